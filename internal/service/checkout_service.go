package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"absign/internal/domain"
	"absign/internal/models"
	"absign/pkg/payment"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart must contain at least one item")
	ErrInvalidTotal  = errors.New("order total must be positive")
	ErrTotalMismatch = errors.New("total does not match subtotal + tax + shipping")
)

// TransactionStore is the slice of the transaction repository the
// orchestrator needs; the conditional updates are what make concurrent
// webhook deliveries and status polls safe.
type TransactionStore interface {
	Create(t *models.Transaction) error
	GetBySessionID(sessionID string) (*models.Transaction, error)
	UpdatePaymentStatusIf(sessionID, fromPayment, toPayment, toStatus string) (bool, error)
	MarkNotified(sessionID string) (bool, error)
}

// WebhookEventStore deduplicates provider event IDs.
type WebhookEventStore interface {
	Seen(eventID string) (bool, error)
	InsertOnce(ev *models.WebhookEvent) (bool, error)
}

// CheckoutService coordinates the payment provider, the transaction
// store and the dual-notification pipeline. It owns the checkout state
// machine: initiated -> pending -> paid | failed | expired.
type CheckoutService struct {
	provider payment.Provider
	txStore  TransactionStore
	events   WebhookEventStore
	emails   *EmailService
	currency string
}

func NewCheckoutService(provider payment.Provider, txStore TransactionStore, events WebhookEventStore, emails *EmailService, defaultCurrency string) *CheckoutService {
	if defaultCurrency == "" {
		defaultCurrency = "cad"
	}
	return &CheckoutService{
		provider: provider,
		txStore:  txStore,
		events:   events,
		emails:   emails,
		currency: defaultCurrency,
	}
}

type CheckoutInput struct {
	CartItems       []models.CartItem
	CustomerEmail   string
	CustomerName    string
	ShippingAddress models.Address
	BillingAddress  models.Address
	HostURL         string
	Subtotal        float64
	Tax             float64
	Shipping        float64
	Total           float64
	Currency        string
}

type CheckoutResult struct {
	SessionID string
	URL       string
}

// CreateSession validates the cart, creates a hosted-checkout session
// with the provider and persists the Transaction snapshot. The provider
// call happens before any persistence: a provider failure leaves no
// partial Transaction behind.
func (s *CheckoutService) CreateSession(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if len(in.CartItems) == 0 {
		return nil, ErrEmptyCart
	}
	if in.Total <= 0 {
		return nil, ErrInvalidTotal
	}
	if math.Abs(in.Total-(in.Subtotal+in.Tax+in.Shipping)) > 0.01 {
		return nil, ErrTotalMismatch
	}
	currency := in.Currency
	if currency == "" {
		currency = s.currency
	}

	host := strings.TrimRight(in.HostURL, "/")
	successURL := host + "/order-confirmation?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := host + "/checkout"

	// Forwarded opaquely to the provider and echoed back in status
	// queries; used for debugging and reconciliation, never as the
	// source of truth for pricing.
	metadata := map[string]string{
		"customer_email": in.CustomerEmail,
		"customer_name":  in.CustomerName,
		"order_items":    strconv.Itoa(len(in.CartItems)),
		"subtotal":       money(in.Subtotal),
		"tax":            money(in.Tax),
		"shipping":       money(in.Shipping),
		"currency":       strings.ToUpper(currency),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		Amount:     in.Total,
		Currency:   currency,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Metadata:   metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	tx := &models.Transaction{
		SessionID:     sess.SessionID,
		PaymentStatus: domain.PaymentInitiated,
		Status:        domain.SessionPending,
		Amount:        in.Total,
		Currency:      strings.ToUpper(currency),
		CustomerEmail: in.CustomerEmail,
		CustomerName:  in.CustomerName,
	}
	if err := tx.SetCartItems(in.CartItems); err != nil {
		return nil, fmt.Errorf("encode cart items: %w", err)
	}
	tx.SetShippingAddress(in.ShippingAddress)
	tx.SetBillingAddress(in.BillingAddress)
	tx.SetMetadata(metadata)
	if err := s.txStore.Create(tx); err != nil {
		return nil, fmt.Errorf("persist transaction: %w", err)
	}

	log.Printf("[checkout] created session %s amount=%s %s", sess.SessionID, money(in.Total), tx.Currency)
	return &CheckoutResult{SessionID: sess.SessionID, URL: sess.URL}, nil
}

// GetStatus queries the provider for live session status and reconciles
// the stored Transaction. The store is only written when the live
// payment status differs from the stored one, and then only through a
// conditional update. The live tuple is returned regardless of whether
// a write occurred. A missing local row is not fatal: the provider is
// still queried.
func (s *CheckoutService) GetStatus(ctx context.Context, sessionID string) (*payment.CheckoutStatus, error) {
	live, err := s.provider.GetCheckoutStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txStore.GetBySessionID(sessionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load transaction: %w", err)
		}
		log.Printf("[checkout] no local transaction for session %s, returning live status only", sessionID)
		return live, nil
	}

	if live.AmountTotal > 0 && math.Abs(live.AmountTotal-tx.Amount) > 0.009 {
		// Compared, never overwritten: the stored amount is what we
		// offered, the provider amount is what was charged.
		log.Printf("[checkout] amount mismatch on session %s: stored=%s provider=%s",
			sessionID, money(tx.Amount), money(live.AmountTotal))
	}

	if err := s.applyTransition(tx, live.PaymentStatus, live.Status); err != nil {
		// the caller still gets the live tuple; a later poll or
		// webhook re-applies the transition
		log.Printf("[checkout] reconcile session %s: %v", sessionID, err)
	}
	return live, nil
}

// HandleWebhook verifies and applies one provider-pushed event.
// Already-recorded event IDs short-circuit, but the dedup row is only
// written after the transition and notification latch succeed: a store
// failure surfaces as an error (the receiver answers non-2xx) and the
// provider's retry is processed instead of being skipped as a
// duplicate. Replays are harmless because the transition guard and the
// latch are conditional writes. Unknown event types and unknown
// sessions are acknowledged, not errored.
func (s *CheckoutService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	ev, err := s.provider.ConstructWebhookEvent(body, signature)
	if err != nil {
		return err
	}

	if ev.ID != "" {
		seen, err := s.events.Seen(ev.ID)
		if err != nil {
			return fmt.Errorf("check webhook event: %w", err)
		}
		if seen {
			log.Printf("[stripe webhook] duplicate event %s (%s), skipping", ev.ID, ev.Type)
			return nil
		}
	}

	if ev.SessionID == "" {
		log.Printf("[stripe webhook] event %s (%s) carries no session, ignoring", ev.ID, ev.Type)
		return s.recordEvent(ev)
	}

	tx, err := s.txStore.GetBySessionID(ev.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[stripe webhook] no transaction for session %s, acknowledging", ev.SessionID)
			return s.recordEvent(ev)
		}
		return fmt.Errorf("load transaction: %w", err)
	}

	if err := s.applyTransition(tx, ev.PaymentStatus, sessionStatusForEvent(ev.Type, tx.Status)); err != nil {
		return err
	}
	return s.recordEvent(ev)
}

// recordEvent consumes the event ID once processing is complete.
func (s *CheckoutService) recordEvent(ev *payment.WebhookEvent) error {
	if ev.ID == "" {
		return nil
	}
	if _, err := s.events.InsertOnce(&models.WebhookEvent{
		EventID:   ev.ID,
		Type:      ev.Type,
		SessionID: ev.SessionID,
	}); err != nil {
		return fmt.Errorf("record webhook event: %w", err)
	}
	return nil
}

// applyTransition enforces monotonic payment-status transitions via a
// conditional update, and fires the dual notification exactly once when
// a session first reaches paid. Store failures are returned so webhook
// deliveries surface them and the provider retries.
func (s *CheckoutService) applyTransition(tx *models.Transaction, newPayment, newStatus string) error {
	if newPayment == "" {
		return nil
	}
	if newPayment == tx.PaymentStatus {
		// a replayed paid event may still owe the notification when an
		// earlier attempt failed after the transition landed; the latch
		// keeps this idempotent
		if newPayment == domain.PaymentPaid {
			return s.notifyPaymentComplete(tx.SessionID)
		}
		return nil
	}
	if !domain.TransitionAllowed(tx.PaymentStatus, newPayment) {
		log.Printf("[checkout] refusing transition %s -> %s on session %s",
			tx.PaymentStatus, newPayment, tx.SessionID)
		return nil
	}
	if newStatus == "" {
		newStatus = tx.Status
	}
	changed, err := s.txStore.UpdatePaymentStatusIf(tx.SessionID, tx.PaymentStatus, newPayment, newStatus)
	if err != nil {
		return fmt.Errorf("update session %s status: %w", tx.SessionID, err)
	}
	if !changed {
		// A concurrent webhook or poll got there first.
		return nil
	}
	log.Printf("[checkout] session %s: %s -> %s", tx.SessionID, tx.PaymentStatus, newPayment)
	if newPayment == domain.PaymentPaid {
		return s.notifyPaymentComplete(tx.SessionID)
	}
	return nil
}

// notifyPaymentComplete claims the notification latch and, if this
// caller won it, fires the dual business/customer notification. The
// latch guarantees the pair is attempted at most once per confirmed
// payment even when webhook retries race status polls. Email failures
// stay best-effort; store failures propagate.
func (s *CheckoutService) notifyPaymentComplete(sessionID string) error {
	won, err := s.txStore.MarkNotified(sessionID)
	if err != nil {
		return fmt.Errorf("claim notification latch for session %s: %w", sessionID, err)
	}
	if !won {
		return nil
	}
	tx, err := s.txStore.GetBySessionID(sessionID)
	if err != nil {
		return fmt.Errorf("reload session %s for notification: %w", sessionID, err)
	}
	businessOK, customerOK := s.emails.SendPaymentCompleteNotifications(tx)
	if !businessOK || !customerOK {
		log.Printf("[checkout] payment notifications for session %s: business=%t customer=%t",
			sessionID, businessOK, customerOK)
	}
	return nil
}

func sessionStatusForEvent(eventType, current string) string {
	switch eventType {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded",
		"checkout.session.async_payment_failed":
		return domain.SessionComplete
	case "checkout.session.expired":
		return domain.SessionExpired
	default:
		return current
	}
}
