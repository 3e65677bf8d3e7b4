package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"
)

const reconcileLeaderKey = "reconcile:leader"

// Reconciler periodically runs the reconciliation pass. The pass is
// single-flight across all replicas: the distributed lock elects a leader
// per cycle and losers simply skip their tick.
type Reconciler struct {
	commands commands.ReconcileCommands
	locker   commands.Locker
	cfg      config.ReconcileConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReconciler(cmds commands.ReconcileCommands, locker commands.Locker, cfg config.ReconcileConfig) *Reconciler {
	return &Reconciler{
		commands: cmds,
		locker:   locker,
		cfg:      cfg,
	}
}

func (r *Reconciler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(ctx)
	slog.Info("reconciler started", "interval", r.cfg.Interval)
}

func (r *Reconciler) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
	slog.Info("reconciler stopped")
}

func (r *Reconciler) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reconciler) tick(ctx context.Context) {
	acquired, err := r.locker.TryWithLock(ctx, reconcileLeaderKey, func(ctx context.Context) error {
		_, runErr := r.commands.RunOnce(ctx)
		return runErr
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Error("reconciliation pass failed", "error", err)
		return
	}
	if !acquired {
		slog.Debug("reconciliation skipped, another replica is leading")
	}
}
