package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/domain/webhook"
	"storefront-payments/internal/infra"
	"storefront-payments/internal/infra/repository"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/provider"
)

//go:generate mockgen -source=process_event.go -destination=../../../tests/mock/commands/process_event_mock.go -package=commandsmock

type ProcessorCommands interface {
	// ProcessNext claims and processes the oldest runnable event.
	// Returns false when the queue is empty.
	ProcessNext(ctx context.Context) (bool, error)
	// ProcessOne is the operator replay entry point; it claims a specific
	// event, dead-lettered or not.
	ProcessOne(ctx context.Context, eventID uuid.UUID) (string, error)
}

type processorImpl struct {
	events    EventStore
	orders    OrderStore
	idem      IdempotencyStore
	finalizer Finalizer
	locker    Locker
	registry  *provider.Registry
	cfg       config.ProcessorConfig
	clock     clock.Clock
}

func NewProcessorUseCase(
	events EventStore,
	orders OrderStore,
	idem IdempotencyStore,
	finalizer Finalizer,
	locker Locker,
	registry *provider.Registry,
	cfg config.ProcessorConfig,
	clk clock.Clock,
) ProcessorCommands {
	return &processorImpl{
		events:    events,
		orders:    orders,
		idem:      idem,
		finalizer: finalizer,
		locker:    locker,
		registry:  registry,
		cfg:       cfg,
		clock:     clk,
	}
}

func (p *processorImpl) ProcessNext(ctx context.Context) (bool, error) {
	ev, err := p.events.ClaimNext(ctx, p.clock.Now(), p.cfg.ClaimLease)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, errs.ErrTransientInfra)
	}

	if _, err := p.processClaimed(ctx, ev); err != nil {
		return true, err
	}
	return true, nil
}

func (p *processorImpl) ProcessOne(ctx context.Context, eventID uuid.UUID) (string, error) {
	ev, err := p.events.ClaimByID(ctx, eventID, p.clock.Now(), p.cfg.ClaimLease)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, errs.ErrEventNotFound)
		}
		return "", errs.Mark(err, errs.ErrTransientInfra)
	}

	return p.processClaimed(ctx, ev)
}

// processClaimed drives one claimed event to a terminal outcome or back into
// the retry queue. Every exit path either marks the event or releases the claim.
func (p *processorImpl) processClaimed(ctx context.Context, ev *webhook.RawWebhookEvent) (string, error) {
	reason, err := p.handle(ctx, ev)
	if err != nil {
		return "", p.scheduleRetry(ctx, ev, err)
	}

	if markErr := p.events.MarkProcessed(ctx, ev.ID, reason); markErr != nil {
		return "", p.scheduleRetry(ctx, ev, markErr)
	}

	slog.Info("webhook event processed",
		"event_id", ev.ID,
		"provider", ev.Provider,
		"reason", reason,
		"correlation_id", ev.CorrelationID)
	return reason, nil
}

func (p *processorImpl) handle(ctx context.Context, ev *webhook.RawWebhookEvent) (string, error) {
	n, err := webhook.Normalize(ev.RawPayload)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidPayload) {
			// Ingestion validates shape, so this only happens for replayed
			// legacy rows; terminal either way.
			return webhook.ReasonInvalidPayload, nil
		}
		return "", err
	}

	outcome := p.registry.Classify(ev.Provider, n.State)

	// Administrative fast path. The structural guard below (terminal order
	// state) stays authoritative; this only skips redundant work after a
	// crash-and-reclaim.
	inserted, err := p.idem.TryInsert(ctx, ev.ID, n.TransactionID, p.clock.Now().Add(p.cfg.RecordRetention))
	if err != nil {
		return "", errs.Mark(err, errs.ErrTransientInfra)
	}
	if !inserted {
		rec, getErr := p.idem.Get(ctx, ev.ID)
		if getErr == nil && rec.Status == repository.IdemCompleted {
			if reason, rerr := p.replayReason(ctx, n); rerr == nil {
				return reason, nil
			}
			// re-read failed: fall through, the structural guard settles it
		}
		// processing or failed: a previous attempt died mid-flight, continue
	}

	reason, err := p.settle(ctx, ev, n, outcome)
	if err != nil {
		return "", err
	}

	if idemErr := p.idem.MarkCompleted(ctx, ev.ID, nil); idemErr != nil {
		slog.Warn("failed to complete idempotency record", "event_id", ev.ID, "error", idemErr)
	}
	return reason, nil
}

// replayReason labels a redelivery whose first pass already completed. The
// first pass may have ended in cancellation or left the order pending, so the
// label comes from current order state, never from an assumed confirmation.
func (p *processorImpl) replayReason(ctx context.Context, n *webhook.Notification) (string, error) {
	o, err := p.resolveOrder(ctx, n)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			return webhook.ReasonOrderNotFound, nil
		}
		return "", err
	}
	switch {
	case o.Status == order.StatusConfirmed:
		return webhook.ReasonAlreadyConfirmed, nil
	case o.IsDraft():
		return webhook.ReasonPaymentNotCompleted, nil
	default:
		return webhook.ReasonAlreadyCancelled, nil
	}
}

// orderLockKey is the one mutual-exclusion key for a finalization. Webhook
// processing and reconciliation both derive it from the resolved order row,
// never from payload fields, so the two paths always contend on the same key.
func orderLockKey(orderID uuid.UUID) string {
	return fmt.Sprintf("order:%s", orderID)
}

func (p *processorImpl) settle(ctx context.Context, ev *webhook.RawWebhookEvent, n *webhook.Notification, outcome provider.Outcome) (string, error) {
	o, err := p.resolveOrder(ctx, n)
	if err != nil && !errors.Is(err, errs.ErrOrderNotFound) {
		return "", err
	}

	if o == nil {
		if outcome == provider.OutcomeSuccess {
			return p.createEmergencyOrder(ctx, ev, n)
		}
		// Nothing to cancel and no money at risk
		return webhook.ReasonOrderNotFound, nil
	}

	if !o.IsDraft() {
		if o.Status == order.StatusConfirmed {
			return webhook.ReasonAlreadyConfirmed, nil
		}
		return webhook.ReasonAlreadyCancelled, nil
	}

	switch outcome {
	case provider.OutcomeSuccess:
		var reason string
		err := p.locker.WithLock(ctx, orderLockKey(o.ID), func(ctx context.Context) error {
			// Finalize re-reads the order under the lock; the DRAFT check
			// above is only a cheap pre-filter.
			result, err := p.finalizer.Finalize(ctx, o.ID, PaymentInfo{
				TransactionID: n.TransactionID,
				AmountCents:   n.AmountCents,
				Currency:      n.Currency,
			})
			if err != nil {
				return err
			}
			reason = reasonForOutcome(result.Outcome)
			return nil
		})
		if err != nil {
			return "", err
		}
		return reason, nil

	case provider.OutcomeFailure:
		err := p.locker.WithLock(ctx, orderLockKey(o.ID), func(ctx context.Context) error {
			_, err := p.finalizer.CancelAndRelease(ctx, o.ID, order.CancelReasonPaymentFailed)
			return err
		})
		if err != nil {
			return "", err
		}
		return webhook.ReasonCancelled, nil

	default:
		// Pending or unknown: the order stays untouched; reconciliation or a
		// later delivery settles it.
		return webhook.ReasonPaymentNotCompleted, nil
	}
}

// resolveOrder looks up by gateway transaction id, then falls back to the
// checkout-session secondary index.
func (p *processorImpl) resolveOrder(ctx context.Context, n *webhook.Notification) (*order.Order, error) {
	if n.TransactionID != "" {
		o, err := p.orders.FindByTransactionID(ctx, n.TransactionID)
		if err == nil {
			return o, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTransientInfra)
		}
	}

	if sessionID, parseErr := uuid.Parse(n.SessionID); parseErr == nil {
		o, err := p.orders.FindBySessionID(ctx, sessionID)
		if err == nil {
			slog.Info("order recovered via session index",
				"order_id", o.ID, "session_id", sessionID)
			return o, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTransientInfra)
		}
	}

	if id, parseErr := uuid.Parse(n.OrderID); parseErr == nil {
		o, err := p.orders.FindByID(ctx, id)
		if err == nil {
			return o, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTransientInfra)
		}
	}

	return nil, errs.ErrOrderNotFound
}

// createEmergencyOrder keeps received money visible when no order matches:
// a confirmed, manually-flagged order is always preferable to a silently
// dropped payment.
func (p *processorImpl) createEmergencyOrder(ctx context.Context, ev *webhook.RawWebhookEvent, n *webhook.Notification) (string, error) {
	o := order.NewEmergencyOrder(n.TransactionID, n.AmountCents, n.Currency, p.clock.Now())

	if err := p.orders.CreateEmergency(ctx, o); err != nil {
		return "", errs.Mark(err, errs.ErrTransientInfra)
	}

	slog.Error("ALERT: emergency order created for unmatched payment",
		"order_id", o.ID,
		"transaction_id", n.TransactionID,
		"amount_cents", n.AmountCents,
		"event_id", ev.ID)

	return webhook.ReasonEmergencyOrder, nil
}

// scheduleRetry releases the claim with a capped, jittered exponential delay,
// or dead-letters the event once the budget is spent.
func (p *processorImpl) scheduleRetry(ctx context.Context, ev *webhook.RawWebhookEvent, cause error) error {
	attempt := int(ev.RetryCount) + 1

	if attempt > p.cfg.RetryMax {
		if err := p.events.MarkDeadLetter(ctx, ev.ID, cause.Error()); err != nil {
			return errs.Mark(err, errs.ErrTransientInfra)
		}
		if err := p.idem.MarkFailed(ctx, ev.ID); err != nil {
			slog.Warn("failed to fail idempotency record", "event_id", ev.ID, "error", err)
		}
		slog.Error("webhook event dead-lettered",
			"event_id", ev.ID,
			"provider", ev.Provider,
			"attempts", attempt,
			"error", cause.Error())
		return errs.Mark(cause, errs.ErrManualIntervention)
	}

	retryAfter := p.clock.Now().Add(p.retryDelay(attempt))
	if err := p.events.ReleaseForRetry(ctx, ev.ID, retryAfter, cause.Error()); err != nil {
		return errs.Mark(err, errs.ErrTransientInfra)
	}

	slog.Warn("webhook event scheduled for retry",
		"event_id", ev.ID,
		"attempt", attempt,
		"retry_after", retryAfter,
		"error", cause.Error())
	return cause
}

func (p *processorImpl) retryDelay(attempt int) time.Duration {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.cfg.RetryBackoffBase
	bo.MaxInterval = p.cfg.RetryBackoffMax
	bo.RandomizationFactor = 0.25
	bo.Multiplier = 2
	bo.MaxElapsedTime = 0
	bo.Reset()

	delay := bo.NextBackOff()
	for i := 1; i < attempt; i++ {
		delay = bo.NextBackOff()
	}
	return delay
}

func reasonForOutcome(outcome FinalizeOutcome) string {
	switch outcome {
	case OutcomeConfirmed:
		return webhook.ReasonConfirmed
	case OutcomeAlreadyConfirmed:
		return webhook.ReasonAlreadyConfirmed
	case OutcomeCancelledStock, OutcomeCancelled:
		return webhook.ReasonCancelled
	default:
		return webhook.ReasonAlreadyCancelled
	}
}
