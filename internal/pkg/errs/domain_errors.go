package errs

import "errors"

// Sentinel errors shared across the webhook processing core.
// Classification decides retry behavior, so these are the taxonomy,
// not just labels.
var (
	// Validation: stored, marked processed, never retried
	ErrValidation       = errors.New("validation error")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")

	// Transient infrastructure: retried with bounded exponential backoff
	ErrTransientInfra  = errors.New("transient infrastructure error")
	ErrLockNotAcquired = errors.New("distributed lock not acquired")

	// Business conflict at commit: compensated and cancelled, not retried as-is
	ErrStockUnavailable = errors.New("stock unavailable")

	// Circuit open: skip cycle, retried next interval
	ErrProviderUnavailable = errors.New("payment provider unavailable")

	// Surfaced to operators, never auto-resolved
	ErrManualIntervention = errors.New("manual intervention required")

	// Order state
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotDraft      = errors.New("order is not in draft state")
	ErrOrderAlreadyFinal  = errors.New("order already finalized")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrReservationExpired = errors.New("stock reservation expired")

	// Event store
	ErrEventNotFound   = errors.New("webhook event not found")
	ErrDuplicateEvent  = errors.New("duplicate webhook delivery")
	ErrEventDeadLetter = errors.New("event is dead-lettered")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
