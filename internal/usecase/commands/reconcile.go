package commands

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/time/rate"

	"storefront-payments/internal/domain/order"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/provider"
)

// ReconcileStats summarizes one reconciliation pass.
type ReconcileStats struct {
	Scanned      int
	Confirmed    int
	Cancelled    int
	ForceExpired int
	Skipped      int
	Errors       int
}

// ReconcileCommands is the backstop for lost webhooks: it polls the provider
// for stale DRAFT orders and settles them through the exact same Finalizer
// the webhook path uses. One commit code path, no divergence.
type ReconcileCommands interface {
	RunOnce(ctx context.Context) (*ReconcileStats, error)
}

type reconcileImpl struct {
	orders    OrderStore
	stocks    StockStore
	finalizer Finalizer
	client    provider.StatusClient
	locker    Locker
	limiter   *rate.Limiter
	cfg       config.ReconcileConfig
	clock     clock.Clock
}

func NewReconcileUseCase(
	orders OrderStore,
	stocks StockStore,
	finalizer Finalizer,
	client provider.StatusClient,
	locker Locker,
	cfg config.ReconcileConfig,
	clk clock.Clock,
) ReconcileCommands {
	perSecond := rate.Limit(float64(cfg.MaxAPICallsPerMinute) / 60.0)
	return &reconcileImpl{
		orders:    orders,
		stocks:    stocks,
		finalizer: finalizer,
		client:    client,
		locker:    locker,
		limiter:   rate.NewLimiter(perSecond, 1),
		cfg:       cfg,
		clock:     clk,
	}
}

func (r *reconcileImpl) RunOnce(ctx context.Context) (*ReconcileStats, error) {
	stats := &ReconcileStats{}

	if err := r.expireAbandoned(ctx, stats); err != nil {
		return stats, err
	}

	now := r.clock.Now()
	candidates, err := r.orders.ListReconcilable(ctx,
		now.Add(-r.cfg.Lookback()),
		now.Add(-r.cfg.HardCeiling()),
		int32(r.cfg.MaxOrdersPerRun),
	)
	if err != nil {
		return stats, errs.Mark(err, errs.ErrTransientInfra)
	}

	for _, o := range candidates {
		stats.Scanned++

		if err := r.limiter.Wait(ctx); err != nil {
			return stats, err
		}

		if err := r.reconcileOrder(ctx, o, stats); err != nil {
			if errors.Is(err, errs.ErrProviderUnavailable) {
				// Circuit open: nothing else will succeed this pass
				slog.Warn("provider circuit open, aborting reconciliation pass",
					"scanned", stats.Scanned)
				return stats, nil
			}
			stats.Errors++
			slog.Warn("reconciliation skipped order",
				"order_id", o.ID, "error", err)
		}
	}

	slog.Info("reconciliation pass complete",
		"scanned", stats.Scanned,
		"confirmed", stats.Confirmed,
		"cancelled", stats.Cancelled,
		"force_expired", stats.ForceExpired,
		"skipped", stats.Skipped,
		"errors", stats.Errors)

	return stats, nil
}

// expireAbandoned force-expires drafts past the hard ceiling and returns
// their stock; beyond that age the payment is treated as never coming.
func (r *reconcileImpl) expireAbandoned(ctx context.Context, stats *ReconcileStats) error {
	now := r.clock.Now()
	abandoned, err := r.orders.ListAbandoned(ctx, now.Add(-r.cfg.HardCeiling()), int32(r.cfg.MaxOrdersPerRun))
	if err != nil {
		return errs.Mark(err, errs.ErrTransientInfra)
	}

	for _, o := range abandoned {
		ok, err := r.orders.ExpireIfDraft(ctx, o.ID, now)
		if err != nil {
			slog.Warn("failed to expire abandoned order", "order_id", o.ID, "error", err)
			continue
		}
		if !ok {
			continue // lost to a concurrent finalizer, which is fine
		}
		if _, relErr := r.stocks.ReleaseActiveByOrder(ctx, o.ID); relErr != nil {
			slog.Error("failed to release stock of expired order",
				"order_id", o.ID, "error", relErr)
		}
		stats.ForceExpired++
		slog.Info("abandoned draft force-expired", "order_id", o.ID, "created_at", o.CreatedAt)
	}
	return nil
}

func (r *reconcileImpl) reconcileOrder(ctx context.Context, o *order.Order, stats *ReconcileStats) error {
	txID := o.OrderNumber
	if o.GatewayTransactionID != nil && *o.GatewayTransactionID != "" {
		txID = *o.GatewayTransactionID
	}

	status, err := r.client.FetchStatus(ctx, r.cfg.ProviderName, txID)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			// Provider never saw this payment; the ceiling will expire it
			stats.Skipped++
			return nil
		}
		return err
	}

	method := order.RecoveryMethodReconciliation

	// Same key the webhook processor locks, so the two paths serialize.
	return r.locker.WithLock(ctx, orderLockKey(o.ID), func(ctx context.Context) error {
		switch status.Outcome {
		case provider.OutcomeSuccess:
			result, err := r.finalizer.Finalize(ctx, o.ID, PaymentInfo{
				TransactionID:  status.TransactionID,
				AmountCents:    status.AmountCents,
				Currency:       status.Currency,
				RecoveryMethod: &method,
			})
			if err != nil {
				return err
			}
			if result.Outcome == OutcomeConfirmed {
				stats.Confirmed++
				slog.Info("lost webhook recovered by reconciliation",
					"order_id", o.ID, "transaction_id", status.TransactionID)
			}
			return nil

		case provider.OutcomeFailure:
			if _, err := r.finalizer.CancelAndRelease(ctx, o.ID, order.CancelReasonPaymentFailed); err != nil {
				return err
			}
			stats.Cancelled++
			return nil

		default:
			// Still pending at the provider: next cycle's problem
			stats.Skipped++
			return nil
		}
	})
}
