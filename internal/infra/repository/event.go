package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-payments/internal/domain/webhook"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/pkg/pgconv"
)

const eventColumns = `
	id, provider, raw_payload, received_at, idempotency_key, correlation_id,
	processed, processed_reason, processing, lease_expires_at,
	retry_count, retry_after, last_error, dead_letter, requires_manual, invalid_signature`

// EventRepository is the durable staging buffer for gateway deliveries.
// The processing flag is a time-bounded lease, never a permanent hold;
// the sweeper returns expired leases to the queue.
type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Insert stores a delivery exactly once per idempotency key. A duplicate
// delivery is not an error; the caller learns it was already staged.
func (r *EventRepository) Insert(ctx context.Context, ev *webhook.RawWebhookEvent) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO webhook_events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, NULL, 0, NULL, NULL, false, false, $9)
		ON CONFLICT (idempotency_key) DO NOTHING`,
		ev.ID, ev.Provider, ev.RawPayload, ev.ReceivedAt, ev.IdempotencyKey, ev.CorrelationID,
		ev.Processed, pgconv.TextFromPtr(ev.ProcessedReason), ev.InvalidSignature,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert webhook event", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimNext atomically flips processing false→true on the oldest runnable
// event. The claim is the primary guard against double-dequeue across
// workers; SKIP LOCKED keeps concurrent claimers from serializing.
func (r *EventRepository) ClaimNext(ctx context.Context, now time.Time, lease time.Duration) (*webhook.RawWebhookEvent, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE webhook_events SET processing = true, lease_expires_at = $2
		WHERE id = (
			SELECT id FROM webhook_events
			WHERE NOT processed
			  AND NOT processing
			  AND NOT dead_letter
			  AND (retry_after IS NULL OR retry_after <= $1)
			ORDER BY received_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+eventColumns,
		now, now.Add(lease),
	)

	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no claimable event", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim webhook event", err)
	}
	return ev, nil
}

// ClaimByID claims a specific event for operator replay, dead-lettered or not.
func (r *EventRepository) ClaimByID(ctx context.Context, id uuid.UUID, now time.Time, lease time.Duration) (*webhook.RawWebhookEvent, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE webhook_events
		SET processing = true, lease_expires_at = $2, dead_letter = false
		WHERE id = $1 AND NOT processing
		RETURNING `+eventColumns,
		id, now.Add(lease),
	)

	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event not found or already claimed", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim webhook event for replay", err)
	}
	return ev, nil
}

func (r *EventRepository) MarkProcessed(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE webhook_events
		SET processed = true, processed_reason = $2, processing = false, lease_expires_at = NULL
		WHERE id = $1`,
		id, reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark event processed", err)
	}
	return nil
}

// ReleaseForRetry returns the claim and schedules the next attempt.
func (r *EventRepository) ReleaseForRetry(ctx context.Context, id uuid.UUID, retryAfter time.Time, lastError string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE webhook_events
		SET processing = false, lease_expires_at = NULL,
		    retry_count = retry_count + 1, retry_after = $2, last_error = $3
		WHERE id = $1`,
		id, retryAfter, lastError,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release event for retry", err)
	}
	return nil
}

// MarkDeadLetter takes the event out of automatic retry for good.
func (r *EventRepository) MarkDeadLetter(ctx context.Context, id uuid.UUID, lastError string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE webhook_events
		SET processing = false, lease_expires_at = NULL,
		    retry_count = retry_count + 1, retry_after = NULL,
		    dead_letter = true, requires_manual = true, last_error = $2
		WHERE id = $1`,
		id, lastError,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to dead-letter event", err)
	}
	return nil
}

// ReapExpiredLeases frees claims whose holder died mid-processing.
func (r *EventRepository) ReapExpiredLeases(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE webhook_events
		SET processing = false, lease_expires_at = NULL
		WHERE processing AND lease_expires_at < $1`,
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reap expired leases", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*webhook.RawWebhookEvent, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM webhook_events WHERE id = $1`, id)

	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("webhook event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find webhook event", err)
	}
	return ev, nil
}

func (r *EventRepository) ListDeadLetters(ctx context.Context, limit int32) ([]*webhook.RawWebhookEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+` FROM webhook_events
		WHERE dead_letter
		ORDER BY received_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dead-lettered events", err)
	}
	defer rows.Close()

	var events []*webhook.RawWebhookEvent
	for rows.Next() {
		ev, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan dead-lettered event", scanErr)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate dead-lettered events", err)
	}
	return events, nil
}

// DeleteProcessedBefore purges retained events past the retention window.
// Dead letters are kept until an operator resolves them.
func (r *EventRepository) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM webhook_events
		WHERE processed AND NOT dead_letter AND received_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge processed events", err)
	}
	return tag.RowsAffected(), nil
}

func scanEvent(row pgx.Row) (*webhook.RawWebhookEvent, error) {
	var ev webhook.RawWebhookEvent
	err := row.Scan(
		&ev.ID, &ev.Provider, &ev.RawPayload, &ev.ReceivedAt, &ev.IdempotencyKey, &ev.CorrelationID,
		&ev.Processed, &ev.ProcessedReason, &ev.Processing, &ev.LeaseExpiresAt,
		&ev.RetryCount, &ev.RetryAfter, &ev.LastError, &ev.DeadLetter, &ev.RequiresManual, &ev.InvalidSignature,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
