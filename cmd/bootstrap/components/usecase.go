package components

import (
	"go.uber.org/fx"

	"storefront-payments/internal/lock"
	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/provider"
	"storefront-payments/internal/usecase/commands"
	"storefront-payments/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	provider.NewRegistry,
	NewProviderClient,
	fx.Annotate(
		NewRefundNotifier,
		fx.As(new(commands.RefundNotifier)),
	),
	fx.Annotate(
		func(m *lock.Manager) *lock.Manager { return m },
		fx.As(new(commands.Locker)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewIngestCommands,
		NewFinalizer,
		NewProcessorCommands,
		NewReconcileCommands,
		NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRecoveryQueries,
	),
)

// NewProviderClient wraps the REST status client in the circuit breaker so
// every caller shares one failure budget against the gateway.
func NewProviderClient(cfg config.Config, registry *provider.Registry) provider.StatusClient {
	rest := provider.NewStatusClient(cfg.Provider, registry)
	return provider.NewBreakerClient(cfg.Breaker, rest)
}

func NewRefundNotifier(cfg config.Config) *provider.RefundClient {
	return provider.NewRefundClient(cfg.Provider)
}

func NewIngestCommands(events commands.EventStore, cfg config.Config, clk clock.Clock) commands.IngestCommands {
	return commands.NewIngestUseCase(events, cfg.Webhook, clk)
}

func NewFinalizer(orders commands.OrderStore, stocks commands.StockStore, refunds commands.RefundNotifier, clk clock.Clock) commands.Finalizer {
	return commands.NewFinalizer(orders, stocks, refunds, clk)
}

func NewProcessorCommands(
	events commands.EventStore,
	orders commands.OrderStore,
	idem commands.IdempotencyStore,
	finalizer commands.Finalizer,
	locker commands.Locker,
	registry *provider.Registry,
	cfg config.Config,
	clk clock.Clock,
) commands.ProcessorCommands {
	return commands.NewProcessorUseCase(events, orders, idem, finalizer, locker, registry, cfg.Processor, clk)
}

func NewReconcileCommands(
	orders commands.OrderStore,
	stocks commands.StockStore,
	finalizer commands.Finalizer,
	client provider.StatusClient,
	locker commands.Locker,
	cfg config.Config,
	clk clock.Clock,
) commands.ReconcileCommands {
	return commands.NewReconcileUseCase(orders, stocks, finalizer, client, locker, cfg.Reconcile, clk)
}

func NewSweepCommands(
	events commands.EventStore,
	stocks commands.StockStore,
	idem commands.IdempotencyStore,
	cfg config.Config,
	clk clock.Clock,
) commands.SweepCommands {
	return commands.NewSweepUseCase(events, stocks, idem, cfg.Processor, clk)
}
