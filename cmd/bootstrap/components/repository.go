package components

import (
	"go.uber.org/fx"

	repo_impl "storefront-payments/internal/infra/repository"
	"storefront-payments/internal/usecase/commands"
	"storefront-payments/internal/usecase/queries"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(commands.EventStore)),
			fx.As(new(queries.DeadLetterReadStore)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderStore)),
			fx.As(new(queries.EmergencyOrderReadStore)),
		),
		fx.Annotate(
			repo_impl.NewStockRepository,
			fx.As(new(commands.StockStore)),
		),
		fx.Annotate(
			repo_impl.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyStore)),
		),
	),
)
