package repository

import (
	"testing"

	"absign/internal/domain"
	"absign/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Transaction{}, &models.WebhookEvent{}))
	return db
}

func seedTransaction(t *testing.T, repo *TransactionRepository) *models.Transaction {
	t.Helper()
	tx := &models.Transaction{
		SessionID:     "cs_test_1",
		PaymentStatus: domain.PaymentInitiated,
		Status:        domain.SessionPending,
		Amount:        116.70,
		Currency:      "CAD",
		CustomerEmail: "buyer@example.com",
	}
	require.NoError(t, repo.Create(tx))
	return tx
}

func TestUpdatePaymentStatusIf(t *testing.T) {
	repo := NewTransactionRepository(testDB(t))
	seedTransaction(t, repo)

	changed, err := repo.UpdatePaymentStatusIf("cs_test_1", domain.PaymentInitiated, domain.PaymentPaid, domain.SessionComplete)
	require.NoError(t, err)
	assert.True(t, changed)

	// a second caller holding the stale precondition loses the race
	changed, err = repo.UpdatePaymentStatusIf("cs_test_1", domain.PaymentInitiated, domain.PaymentFailed, domain.SessionComplete)
	require.NoError(t, err)
	assert.False(t, changed)

	tx, err := repo.GetBySessionID("cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, tx.PaymentStatus)
	assert.Equal(t, domain.SessionComplete, tx.Status)
}

func TestMarkNotifiedLatch(t *testing.T) {
	repo := NewTransactionRepository(testDB(t))
	seedTransaction(t, repo)

	won, err := repo.MarkNotified("cs_test_1")
	require.NoError(t, err)
	assert.True(t, won)

	won, err = repo.MarkNotified("cs_test_1")
	require.NoError(t, err)
	assert.False(t, won)

	tx, err := repo.GetBySessionID("cs_test_1")
	require.NoError(t, err)
	assert.NotNil(t, tx.NotifiedAt)
}

func TestGetBySessionIDMissing(t *testing.T) {
	repo := NewTransactionRepository(testDB(t))
	_, err := repo.GetBySessionID("cs_missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWebhookEventInsertOnce(t *testing.T) {
	repo := NewWebhookEventRepository(testDB(t))

	seen, err := repo.Seen("evt_1")
	require.NoError(t, err)
	assert.False(t, seen)

	fresh, err := repo.InsertOnce(&models.WebhookEvent{EventID: "evt_1", Type: "checkout.session.completed", SessionID: "cs_test_1"})
	require.NoError(t, err)
	assert.True(t, fresh)

	seen, err = repo.Seen("evt_1")
	require.NoError(t, err)
	assert.True(t, seen)

	fresh, err = repo.InsertOnce(&models.WebhookEvent{EventID: "evt_1", Type: "checkout.session.completed", SessionID: "cs_test_1"})
	require.NoError(t, err)
	assert.False(t, fresh)

	fresh, err = repo.InsertOnce(&models.WebhookEvent{EventID: "evt_2", Type: "checkout.session.expired", SessionID: "cs_test_1"})
	require.NoError(t, err)
	assert.True(t, fresh)
}
