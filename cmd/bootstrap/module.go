package bootstrap

import (
	"plugin-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RedisModule,
	QueueModule,
	JWTModule,
	CatalogModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
