package order

// Status is the order lifecycle state. Transitions are monotonic:
// DRAFT may move to any other state, terminal states never move again.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) IsTerminal() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	return next.IsTerminal()
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Cancel reasons recorded alongside a CANCELLED status
const (
	CancelReasonPaymentFailed = "payment_failed"
	CancelReasonOutOfStock    = "out_of_stock"
	CancelReasonAbandoned     = "abandoned"
)

// How a non-webhook path arrived at the terminal state
const (
	RecoveryMethodReconciliation    = "reconciliation"
	RecoveryMethodSessionIndex      = "session_index"
	RecoveryMethodEmergencyCreation = "emergency_creation"
)

const (
	SourceCheckout = "checkout"
	SourceWebhook  = "webhook"
)
