package components

import (
	"go.uber.org/fx"

	"storefront-payments/internal/handler"
	"storefront-payments/internal/handler/api"
	"storefront-payments/internal/handler/middleware"
	"storefront-payments/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewRecoveryHandler,
		NewOperatorMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewOperatorMiddleware(cfg config.Config) *middleware.OperatorMiddleware {
	return middleware.NewOperatorMiddleware(cfg.Recovery)
}
