package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/webhook"
)

//go:generate mockgen -source=recovery.go -destination=../../../tests/mock/queries/recovery_mock.go -package=queriesmock

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// DeadLetterView is the operator-facing shape of a permanently failed event.
// The raw payload is included so an operator can judge the delivery before
// replaying it.
type DeadLetterView struct {
	ID             uuid.UUID       `json:"id"`
	Provider       string          `json:"provider"`
	Payload        json.RawMessage `json:"payload"`
	IdempotencyKey string          `json:"idempotency_key"`
	CorrelationID  string          `json:"correlation_id"`
	RetryCount     int32           `json:"retry_count"`
	LastError      *string         `json:"last_error"`
	ReceivedAt     time.Time       `json:"received_at"`
}

type EmergencyOrderView struct {
	ID                   uuid.UUID `json:"id"`
	OrderNumber          string    `json:"order_number"`
	GatewayTransactionID *string   `json:"gateway_transaction_id"`
	TotalCents           int64     `json:"total_cents"`
	Currency             string    `json:"currency"`
	CreatedAt            time.Time `json:"created_at"`
}

type DeadLetterReadStore interface {
	ListDeadLetters(ctx context.Context, limit int32) ([]*webhook.RawWebhookEvent, error)
}

type EmergencyOrderReadStore interface {
	ListEmergency(ctx context.Context, limit int32) ([]*order.Order, error)
}

// RecoveryQueries is the read side of the manual recovery surface.
type RecoveryQueries interface {
	ListDeadLetters(ctx context.Context, limit int) ([]*DeadLetterView, error)
	ListEmergencyOrders(ctx context.Context, limit int) ([]*EmergencyOrderView, error)
}

type recoveryQueriesImpl struct {
	events DeadLetterReadStore
	orders EmergencyOrderReadStore
}

func NewRecoveryQueries(events DeadLetterReadStore, orders EmergencyOrderReadStore) RecoveryQueries {
	return &recoveryQueriesImpl{events: events, orders: orders}
}

func (q *recoveryQueriesImpl) ListDeadLetters(ctx context.Context, limit int) ([]*DeadLetterView, error) {
	events, err := q.events.ListDeadLetters(ctx, validateLimit(limit))
	if err != nil {
		return nil, err
	}

	views := make([]*DeadLetterView, 0, len(events))
	for _, ev := range events {
		views = append(views, &DeadLetterView{
			ID:             ev.ID,
			Provider:       ev.Provider,
			Payload:        json.RawMessage(ev.RawPayload),
			IdempotencyKey: ev.IdempotencyKey,
			CorrelationID:  ev.CorrelationID,
			RetryCount:     ev.RetryCount,
			LastError:      ev.LastError,
			ReceivedAt:     ev.ReceivedAt,
		})
	}
	return views, nil
}

func (q *recoveryQueriesImpl) ListEmergencyOrders(ctx context.Context, limit int) ([]*EmergencyOrderView, error) {
	orders, err := q.orders.ListEmergency(ctx, validateLimit(limit))
	if err != nil {
		return nil, err
	}

	views := make([]*EmergencyOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, &EmergencyOrderView{
			ID:                   o.ID,
			OrderNumber:          o.OrderNumber,
			GatewayTransactionID: o.GatewayTransactionID,
			TotalCents:           o.TotalCents,
			Currency:             o.Currency,
			CreatedAt:            o.CreatedAt,
		})
	}
	return views, nil
}

func validateLimit(limit int) int32 {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return int32(limit)
}
