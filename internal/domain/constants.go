package domain

// Payment status values mirror what the provider reports; "initiated"
// is the only locally invented value, set when the session is created.
const (
	PaymentInitiated = "initiated"
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentFailed    = "failed"
	PaymentExpired   = "expired"
)

// Provider session lifecycle (separate axis from payment status).
const (
	SessionPending  = "pending"
	SessionOpen     = "open"
	SessionComplete = "complete"
	SessionExpired  = "expired"
)

// Softened notification outcomes returned by record-and-notify endpoints.
// The record is always persisted; these only describe the email step.
const (
	NotifySuccess        = "success"
	NotifyPartialSuccess = "partial_success"
	NotifyWarning        = "warning"
)

const RoleAdmin = "ADMIN"

// TransitionAllowed reports whether payment status may move from one
// value to another. Transitions are monotonic: never back to initiated,
// and paid/failed/expired are terminal.
func TransitionAllowed(from, to string) bool {
	if from == to {
		return false
	}
	switch from {
	case PaymentInitiated:
		return to == PaymentPending || to == PaymentPaid || to == PaymentFailed || to == PaymentExpired
	case PaymentPending:
		return to == PaymentPaid || to == PaymentFailed || to == PaymentExpired
	default:
		return false
	}
}
