package bootstrap

import (
	"context"

	"plugin-storefront/internal/pkg/config"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewQueueClient,
	),
)

func RedisConnOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	}
}

func NewQueueClient(lc fx.Lifecycle, cfg config.Config) *asynq.Client {
	client := asynq.NewClient(RedisConnOpt(cfg.Redis))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
