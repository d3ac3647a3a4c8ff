package bootstrap

import (
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/jwt"
	"plugin-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(shared.HoldTokens)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Hold.TTL <= 0 {
		panic("invalid HOLD_TTL: must be positive")
	}
	return jwt.NewService(cfg.Hold.TokenSecret)
}
