package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"absign/internal/domain"
	"absign/internal/models"
	"absign/internal/repository"
	"absign/internal/service"
	"absign/pkg/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Exercises the full webhook path: HTTP handler, orchestrator, real
// repositories over an in-memory database, dev payment provider.
func webhookRouter(db *gorm.DB, transport *fakeTransport) (*gin.Engine, *repository.TransactionRepository) {
	txRepo := repository.NewTransactionRepository(db)
	eventRepo := repository.NewWebhookEventRepository(db)
	emails := service.NewEmailService(transport, "shop@example.com")
	checkout := service.NewCheckoutService(&payment.StubProvider{}, txRepo, eventRepo, emails, "cad")
	h := NewStripeWebhookHandler(checkout)
	r := gin.New()
	r.POST("/api/payments/webhook", h.Handle)
	return r, txRepo
}

func postWebhook(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Stripe-Signature", "t=1,v1=stub")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookCompletedThenReplayed(t *testing.T) {
	db := testDB(t)
	transport := &fakeTransport{fail: map[string]bool{}}
	r, txRepo := webhookRouter(db, transport)

	tx := &models.Transaction{
		SessionID:     "cs_live_1",
		PaymentStatus: domain.PaymentInitiated,
		Status:        domain.SessionPending,
		Amount:        116.70,
		Currency:      "CAD",
		CustomerEmail: "buyer@example.com",
	}
	require.NoError(t, txRepo.Create(tx))

	body := `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_live_1","payment_status":"paid"}}}`
	w := postWebhook(r, body)
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := txRepo.GetBySessionID("cs_live_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, []string{"shop@example.com", "buyer@example.com"}, transport.sent)

	// replay is acknowledged with 200 and no second email pair
	w = postWebhook(r, body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, transport.sent, 2)
}

func TestWebhookOversizedBody(t *testing.T) {
	r, _ := webhookRouter(testDB(t), &fakeTransport{fail: map[string]bool{}})
	w := postWebhook(r, strings.Repeat("a", 65537))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookUnparsableBody(t *testing.T) {
	r, _ := webhookRouter(testDB(t), &fakeTransport{fail: map[string]bool{}})
	w := postWebhook(r, "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookUnknownSessionAcknowledged(t *testing.T) {
	transport := &fakeTransport{fail: map[string]bool{}}
	r, _ := webhookRouter(testDB(t), transport)

	body := `{"id":"evt_2","type":"checkout.session.completed","data":{"object":{"id":"cs_unknown","payment_status":"paid"}}}`
	w := postWebhook(r, body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, transport.sent)
}
