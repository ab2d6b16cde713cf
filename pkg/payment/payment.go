package payment

import (
	"context"
	"errors"
)

// ErrInvalidSignature is returned when a webhook payload fails signature
// verification. The receiver must answer non-2xx so the provider retries.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// ErrSessionNotFound is returned when the provider has no record of the
// requested checkout session.
var ErrSessionNotFound = errors.New("checkout session not found")

// CheckoutRequest describes a hosted-checkout session to create. Amount
// is in major currency units; providers convert to minor units as needed.
type CheckoutRequest struct {
	Amount     float64
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus is the provider's live view of a session. PaymentStatus
// is normalized to the store vocabulary (pending/paid/failed/expired).
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   float64
	Currency      string
	Metadata      map[string]string
}

// WebhookEvent is a verified, parsed provider event. SessionID and
// PaymentStatus are empty for event types that do not carry a session.
type WebhookEvent struct {
	ID            string
	Type          string
	SessionID     string
	PaymentStatus string
}

type Provider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error)
	ConstructWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)
}
