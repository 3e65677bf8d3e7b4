package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/stock"
	"storefront-payments/internal/domain/webhook"
	"storefront-payments/internal/infra/repository"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// EventStore is the durable staging buffer for raw gateway deliveries.
type EventStore interface {
	Insert(ctx context.Context, ev *webhook.RawWebhookEvent) (bool, error)
	ClaimNext(ctx context.Context, now time.Time, lease time.Duration) (*webhook.RawWebhookEvent, error)
	ClaimByID(ctx context.Context, id uuid.UUID, now time.Time, lease time.Duration) (*webhook.RawWebhookEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, reason string) error
	ReleaseForRetry(ctx context.Context, id uuid.UUID, retryAfter time.Time, lastError string) error
	MarkDeadLetter(ctx context.Context, id uuid.UUID, lastError string) error
	ReapExpiredLeases(ctx context.Context, now time.Time) (int64, error)
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// OrderStore exposes the finalization-owned order mutations, each an atomic
// conditional update on the DRAFT precondition.
type OrderStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByTransactionID(ctx context.Context, txID string) (*order.Order, error)
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*order.Order, error)
	ConfirmIfDraft(ctx context.Context, id uuid.UUID, txID string, recoveryMethod *string, now time.Time) (bool, error)
	CancelIfDraft(ctx context.Context, id uuid.UUID, reason string, now time.Time) (bool, error)
	ExpireIfDraft(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	CreateEmergency(ctx context.Context, o *order.Order) error
	ListReconcilable(ctx context.Context, olderThan, youngerThan time.Time, limit int32) ([]*order.Order, error)
	ListAbandoned(ctx context.Context, ceiling time.Time, limit int32) ([]*order.Order, error)
}

// StockStore owns the reservation lifecycle and the guarded counters.
type StockStore interface {
	Reserve(ctx context.Context, res *stock.Reservation) error
	Commit(ctx context.Context, reservationID uuid.UUID) error
	RevertCommit(ctx context.Context, reservationID uuid.UUID) error
	Release(ctx context.Context, reservationID uuid.UUID) error
	Expire(ctx context.Context, reservationID uuid.UUID) error
	ReleaseActiveByOrder(ctx context.Context, orderID uuid.UUID) (int, error)
	GuardedDecrement(ctx context.Context, productID uuid.UUID, size string, qty int32) error
	GuardedIncrement(ctx context.Context, productID uuid.UUID, size string, qty int32) error
	FindActiveByOrderItem(ctx context.Context, orderID, productID uuid.UUID, size string) (*stock.Reservation, error)
	ListExpiredActive(ctx context.Context, now time.Time, limit int32) ([]*stock.Reservation, error)
	ListTimedOutSessions(ctx context.Context, now time.Time, limit int32) ([]*stock.CheckoutSession, error)
	ExpireSession(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

// IdempotencyStore is the fast-path duplicate detector keyed by event id.
type IdempotencyStore interface {
	TryInsert(ctx context.Context, eventID uuid.UUID, paymentID string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, eventID uuid.UUID) (*repository.IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, eventID uuid.UUID, orderID *uuid.UUID) error
	MarkFailed(ctx context.Context, eventID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Locker is the distributed mutual-exclusion port.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
	TryWithLock(ctx context.Context, key string, fn func(ctx context.Context) error) (bool, error)
}

// RefundNotifier hands a failed finalization to the external refund workflow.
type RefundNotifier interface {
	RequestRefund(ctx context.Context, orderID uuid.UUID, transactionID string, amountCents int64) error
}
