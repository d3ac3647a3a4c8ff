package components

import (
	"plugin-storefront/internal/handler"
	"plugin-storefront/internal/handler/api"
	"plugin-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromoHandler,
		api.NewCheckoutHandler,
		middleware.NewAdminMiddleware,
		middleware.NewWebhookMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
