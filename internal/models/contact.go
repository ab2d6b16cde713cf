package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Company   string    `gorm:"size:255" json:"company"`
	Urgency   string    `gorm:"size:64" json:"urgency"`
	Budget    string    `gorm:"size:64" json:"budget"`
	CreatedAt time.Time `json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// IsQuoteRequest reports whether the submission came from the custom
// quote form rather than the plain contact form.
func (c *Contact) IsQuoteRequest() bool {
	return strings.Contains(c.Subject, "Custom Quote Request")
}
