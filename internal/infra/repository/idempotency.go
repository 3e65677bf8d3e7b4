package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-payments/internal/infra"
)

// Statuses of an idempotency record
const (
	IdemProcessing = "processing"
	IdemCompleted  = "completed"
	IdemFailed     = "failed"
)

// IdempotencyRecord is the administrative fast path for duplicate detection;
// the structural guard (terminal order state) remains authoritative.
type IdempotencyRecord struct {
	EventID   uuid.UUID
	PaymentID string
	OrderID   *uuid.UUID
	Status    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type IdempotencyRepository struct {
	db *pgxpool.Pool
}

func NewIdempotencyRepository(db *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the event id. Returns false when a record already exists.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, eventID uuid.UUID, paymentID string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_records (event_id, payment_id, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (event_id) DO NOTHING`,
		eventID, paymentID, IdemProcessing, expiresAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency record", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, eventID uuid.UUID) (*IdempotencyRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT event_id, payment_id, order_id, status, expires_at, created_at
		FROM idempotency_records WHERE event_id = $1`,
		eventID,
	)

	var rec IdempotencyRecord
	err := row.Scan(&rec.EventID, &rec.PaymentID, &rec.OrderID, &rec.Status, &rec.ExpiresAt, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency record", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, eventID uuid.UUID, orderID *uuid.UUID) error {
	return r.setStatus(ctx, eventID, IdemCompleted, orderID)
}

func (r *IdempotencyRepository) MarkFailed(ctx context.Context, eventID uuid.UUID) error {
	return r.setStatus(ctx, eventID, IdemFailed, nil)
}

func (r *IdempotencyRepository) setStatus(ctx context.Context, eventID uuid.UUID, status string, orderID *uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE idempotency_records
		SET status = $2, order_id = COALESCE($3, order_id)
		WHERE event_id = $1`,
		eventID, status, orderID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency record", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM idempotency_records WHERE expires_at < $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency records", err)
	}
	return tag.RowsAffected(), nil
}
