package repository

import (
	"absign/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WebhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// Seen reports whether an event ID was already recorded.
func (r *WebhookEventRepository) Seen(eventID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.WebhookEvent{}).Where("event_id = ?", eventID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertOnce records an event ID, returning false when the event was
// already processed. Relies on the unique index plus ON CONFLICT DO
// NOTHING so concurrent deliveries of the same event cannot both win.
func (r *WebhookEventRepository) InsertOnce(ev *models.WebhookEvent) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(ev)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
