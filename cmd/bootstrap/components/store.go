package components

import (
	"log/slog"

	"plugin-storefront/internal/infra/gateway"
	"plugin-storefront/internal/infra/kv"
	"plugin-storefront/internal/infra/queue"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/usecase/shared"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	kvModule,
	adapterModule,
)

var kvModule = fx.Module("store/kv",
	fx.Provide(
		fx.Annotate(
			kv.NewScheduleStore,
			fx.As(new(shared.ScheduleStore)),
		),
		fx.Annotate(
			kv.NewLedgerStore,
			fx.As(new(shared.LedgerStore)),
		),
	),
)

var adapterModule = fx.Module("store/adapters",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(shared.PaymentGateway)),
		),
		fx.Annotate(
			NewEnqueuer,
			fx.As(new(shared.TaskQueue)),
		),
	),
)

func NewGatewayClient(cfg config.Config, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(cfg.Gateway, logger)
}

func NewEnqueuer(client *asynq.Client, cfg config.Config, logger *slog.Logger) *queue.Enqueuer {
	return queue.NewEnqueuer(client, cfg.Queue, logger)
}
