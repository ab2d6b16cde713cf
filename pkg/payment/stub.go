package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StubProvider is a no-network provider for development when no Stripe
// API key is configured. Sessions are "created" instantly and report
// paid on the first status query; webhook bodies are parsed without
// signature verification.
type StubProvider struct{}

func (s *StubProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	id := fmt.Sprintf("stub_%d", time.Now().UnixNano())
	return &CheckoutSession{
		SessionID: id,
		URL:       strings.Replace(req.SuccessURL, "{CHECKOUT_SESSION_ID}", id, 1),
	}, nil
}

func (s *StubProvider) GetCheckoutStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	if !strings.HasPrefix(sessionID, "stub_") {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return &CheckoutStatus{Status: "complete", PaymentStatus: "paid"}, nil
}

func (s *StubProvider) ConstructWebhookEvent(payload []byte, signature string) (*WebhookEvent, error) {
	var ev struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID            string `json:"id"`
				PaymentStatus string `json:"payment_status"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return &WebhookEvent{
		ID:            ev.ID,
		Type:          ev.Type,
		SessionID:     ev.Data.Object.ID,
		PaymentStatus: ev.Data.Object.PaymentStatus,
	}, nil
}
