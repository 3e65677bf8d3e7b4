package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"storefront-payments/internal/domain/webhook"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
)

// IngestResult reports what ingestion did; the HTTP response is 200 either
// way so the gateway never retry-storms us.
type IngestResult struct {
	EventID   uuid.UUID
	Staged    bool
	Duplicate bool
	Reason    string
}

//go:generate mockgen -source=ingest.go -destination=../../../tests/mock/commands/ingest_mock.go -package=commandsmock

type IngestCommands interface {
	Ingest(ctx context.Context, providerName string, body []byte, signature, correlationID string) (*IngestResult, error)
}

type ingestUseCaseImpl struct {
	events EventStore
	cfg    config.WebhookConfig
	clock  clock.Clock
}

func NewIngestUseCase(events EventStore, cfg config.WebhookConfig, clk clock.Clock) IngestCommands {
	return &ingestUseCaseImpl{
		events: events,
		cfg:    cfg,
		clock:  clk,
	}
}

// Ingest persists every delivery, valid or not, and decides whether the
// processor will ever look at it. Business outcome is fully decoupled from
// the HTTP response.
func (u *ingestUseCaseImpl) Ingest(ctx context.Context, providerName string, body []byte, signature, correlationID string) (*IngestResult, error) {
	now := u.clock.Now()
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	ev := &webhook.RawWebhookEvent{
		ID:            uuid.New(),
		Provider:      providerName,
		RawPayload:    body,
		ReceivedAt:    now,
		CorrelationID: correlationID,
	}

	if !webhook.VerifySignature(u.cfg.SigningSecret, body, signature) {
		// Stored for audit, flagged invalid, never processed as business input
		ev.IdempotencyKey = rawBodyKey(providerName, body)
		ev.InvalidSignature = true
		ev.Processed = true
		reason := webhook.ReasonInvalidSignature
		ev.ProcessedReason = &reason

		if _, err := u.events.Insert(ctx, ev); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		slog.Warn("webhook signature verification failed",
			"provider", providerName,
			"correlation_id", correlationID,
			"event_id", ev.ID)
		return &IngestResult{EventID: ev.ID, Reason: webhook.ReasonInvalidSignature}, nil
	}

	n, err := webhook.Normalize(body)
	if err != nil {
		if !errors.Is(err, errs.ErrInvalidPayload) {
			return nil, err
		}
		// Structurally unparseable: stored, marked processed, never retried
		ev.IdempotencyKey = rawBodyKey(providerName, body)
		ev.Processed = true
		reason := webhook.ReasonInvalidPayload
		ev.ProcessedReason = &reason

		if _, insertErr := u.events.Insert(ctx, ev); insertErr != nil {
			return nil, errs.Mark(insertErr, errs.ErrDatabaseOperationFailed)
		}
		slog.Warn("webhook payload unparseable",
			"provider", providerName,
			"correlation_id", correlationID,
			"event_id", ev.ID)
		return &IngestResult{EventID: ev.ID, Reason: webhook.ReasonInvalidPayload}, nil
	}

	ev.IdempotencyKey = webhook.IdempotencyKey(n.TransactionID, n.OrderID, n.AmountCents, n.State)

	inserted, err := u.events.Insert(ctx, ev)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !inserted {
		slog.Info("duplicate webhook delivery collapsed",
			"provider", providerName,
			"idempotency_key", ev.IdempotencyKey,
			"correlation_id", correlationID)
		return &IngestResult{EventID: ev.ID, Duplicate: true, Reason: webhook.ReasonDuplicateDelivery}, nil
	}

	slog.Info("webhook staged",
		"provider", providerName,
		"event_id", ev.ID,
		"order_id", n.OrderID,
		"state", n.State,
		"correlation_id", correlationID)

	return &IngestResult{EventID: ev.ID, Staged: true}, nil
}

// rawBodyKey derives a deterministic key for bodies whose canonical tuple
// cannot be computed, so even broken deliveries dedupe.
func rawBodyKey(providerName string, body []byte) string {
	sum := sha256.Sum256(append([]byte(providerName+"|"), body...))
	return hex.EncodeToString(sum[:])
}
