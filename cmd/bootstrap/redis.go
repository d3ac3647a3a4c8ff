package bootstrap

import (
	"context"
	"log/slog"

	"plugin-storefront/internal/infra/kv"
	"plugin-storefront/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := kv.NewClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable redis is reported by /health, not fatal at boot
			if err := kv.Ping(ctx, client); err != nil {
				logger.Warn("redis not reachable at startup", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
