package repository

import (
	"time"

	"absign/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(t *models.Transaction) error {
	return r.db.Create(t).Error
}

func (r *TransactionRepository) GetBySessionID(sessionID string) (*models.Transaction, error) {
	var t models.Transaction
	err := r.db.Where("session_id = ?", sessionID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdatePaymentStatusIf applies a conditional status transition: the
// write only lands when payment_status still equals fromPayment, which
// closes the race between a webhook delivery and a concurrent status
// poll on the same session. Returns whether the transition happened.
func (r *TransactionRepository) UpdatePaymentStatusIf(sessionID, fromPayment, toPayment, toStatus string) (bool, error) {
	res := r.db.Model(&models.Transaction{}).
		Where("session_id = ? AND payment_status = ?", sessionID, fromPayment).
		Updates(map[string]interface{}{
			"payment_status": toPayment,
			"status":         toStatus,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkNotified claims the exactly-once notification latch for a session.
// Only the first caller wins; replayed webhooks and racing status polls
// see zero rows affected and skip the email side effect.
func (r *TransactionRepository) MarkNotified(sessionID string) (bool, error) {
	now := time.Now()
	res := r.db.Model(&models.Transaction{}).
		Where("session_id = ? AND notified_at IS NULL", sessionID).
		Updates(map[string]interface{}{"notified_at": &now, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
