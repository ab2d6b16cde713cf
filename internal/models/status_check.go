package models

import "time"

// StatusCheck is a client-reported liveness ping, kept for the uptime
// dashboard.
type StatusCheck struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	CheckID    string    `gorm:"size:64;uniqueIndex" json:"id"`
	ClientName string    `gorm:"size:255;not null" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}
