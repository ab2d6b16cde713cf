package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeProvider implements hosted checkout via the Stripe Checkout API.
type StripeProvider struct {
	client        *client.API
	webhookSecret string
}

func NewStripeProvider(apiKey, webhookSecret string) *StripeProvider {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	})
	sc := client.New(apiKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	return &StripeProvider{client: sc, webhookSecret: webhookSecret}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	cents := int64(math.Round(req.Amount * 100))
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(cents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Order total"),
					},
				},
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	s, err := p.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create session: %w", err)
	}
	return &CheckoutSession{SessionID: s.ID, URL: s.URL}, nil
}

func (p *StripeProvider) GetCheckoutStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := p.client.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("stripe get session: %w", err)
	}
	return &CheckoutStatus{
		Status:        string(s.Status),
		PaymentStatus: normalizePaymentStatus(s.PaymentStatus, s.Status),
		AmountTotal:   float64(s.AmountTotal) / 100,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}, nil
}

func (p *StripeProvider) ConstructWebhookEvent(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	out := &WebhookEvent{ID: event.ID, Type: string(event.Type)}
	switch out.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded",
		"checkout.session.async_payment_failed", "checkout.session.expired":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("stripe webhook payload: %w", err)
		}
		out.SessionID = s.ID
		switch out.Type {
		case "checkout.session.async_payment_failed":
			out.PaymentStatus = "failed"
		case "checkout.session.expired":
			out.PaymentStatus = "expired"
		default:
			out.PaymentStatus = normalizePaymentStatus(s.PaymentStatus, s.Status)
		}
	default:
		log.Printf("[stripe] ignoring event type %s (id=%s)", out.Type, out.ID)
	}
	return out, nil
}

// normalizePaymentStatus maps Stripe's payment_status values onto the
// store vocabulary. "unpaid" on an expired session means the customer
// never paid; on an open session it is still settling.
func normalizePaymentStatus(ps stripe.CheckoutSessionPaymentStatus, status stripe.CheckoutSessionStatus) string {
	switch ps {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return "paid"
	default:
		if status == stripe.CheckoutSessionStatusExpired {
			return "expired"
		}
		return "pending"
	}
}
