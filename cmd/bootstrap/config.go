package bootstrap

import (
	"go.uber.org/fx"

	"storefront-payments/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
