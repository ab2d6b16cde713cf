package handler

import (
	"errors"
	"testing"

	"absign/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Transaction{},
		&models.WebhookEvent{},
		&models.Order{},
		&models.Contact{},
		&models.Review{},
		&models.NewsletterSubscriber{},
		&models.ContentSection{},
	))
	return db
}

// fakeTransport counts deliveries and can fail per recipient.
type fakeTransport struct {
	sent []string
	fail map[string]bool
}

func (f *fakeTransport) Send(to, subject, htmlBody, textBody string) error {
	if f.fail[to] {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}
