package bootstrap

import (
	"context"
	"log/slog"

	"plugin-storefront/internal/infra/mailer"
	"plugin-storefront/internal/infra/queue"
	"plugin-storefront/internal/pkg/config"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var WorkerModule = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.Module("worker",
		fx.Provide(
			NewMailer,
			queue.NewEmailTaskHandler,
			NewWorkerServer,
		),
		fx.Invoke(runWorker),
	),
)

func NewMailer(cfg config.Config) queue.EmailSender {
	return mailer.NewSMTPSender(cfg.Mail)
}

func NewWorkerServer(cfg config.Config, logger *slog.Logger) *asynq.Server {
	return asynq.NewServer(
		RedisConnOpt(cfg.Redis),
		asynq.Config{
			Queues: map[string]int{
				queue.QueueDefault: 10,
			},
			Concurrency: cfg.Queue.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
				logger.Error("task failed", "type", task.Type(), "error", err)
			}),
		},
	)
}

func runWorker(lc fx.Lifecycle, srv *asynq.Server, handler *queue.EmailTaskHandler, logger *slog.Logger) {
	mux := asynq.NewServeMux()
	handler.Register(mux)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("worker starting", "queue", queue.QueueDefault)
			// Start returns once the processor goroutines are running
			return srv.Start(mux)
		},
		OnStop: func(_ context.Context) error {
			logger.Info("worker shutting down")
			srv.Shutdown()
			return nil
		},
	})
}
