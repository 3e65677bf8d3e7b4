package components

import (
	"context"

	"go.uber.org/fx"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"
	"storefront-payments/internal/worker"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewProcessor,
		NewReconciler,
		NewSweeper,
	),
	fx.Invoke(runWorkers),
)

func NewProcessor(cmds commands.ProcessorCommands, cfg config.Config) *worker.Processor {
	return worker.NewProcessor(cmds, cfg.Processor)
}

func NewReconciler(cmds commands.ReconcileCommands, locker commands.Locker, cfg config.Config) *worker.Reconciler {
	return worker.NewReconciler(cmds, locker, cfg.Reconcile)
}

func NewSweeper(cmds commands.SweepCommands, cfg config.Config) *worker.Sweeper {
	return worker.NewSweeper(cmds, cfg.Processor)
}

func runWorkers(lc fx.Lifecycle, processor *worker.Processor, reconciler *worker.Reconciler, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			processor.Start()
			reconciler.Start()
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			// Stop the pollers before the DB pool and redis clients close
			processor.Stop()
			reconciler.Stop()
			sweeper.Stop()
			return nil
		},
	})
}
