package models

import "time"

// WebhookEvent records a processed provider event. The unique EventID
// index is the idempotency key: webhook delivery is at-least-once, and
// side effects must fire at most once per event.
type WebhookEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"size:255;uniqueIndex" json:"event_id"`
	Type      string    `gorm:"size:100" json:"type"`
	SessionID string    `gorm:"size:255;index" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (WebhookEvent) TableName() string {
	return "webhook_events"
}
