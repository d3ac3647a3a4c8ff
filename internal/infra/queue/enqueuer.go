package queue

import (
	"context"
	"errors"
	"log/slog"

	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/usecase/shared"

	"github.com/hibiken/asynq"
)

// Enqueuer is the asynq client used by the API process.
type Enqueuer struct {
	client *asynq.Client
	cfg    config.QueueConfig
	logger *slog.Logger
}

func NewEnqueuer(client *asynq.Client, cfg config.QueueConfig, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{client: client, cfg: cfg, logger: logger}
}

// EnqueuePurchaseConfirmation uses the order reference as task id, so a
// redelivered webhook does not send a second email.
func (e *Enqueuer) EnqueuePurchaseConfirmation(ctx context.Context, msg shared.PurchaseConfirmation) error {
	task, err := NewPurchaseConfirmationTask(msg)
	if err != nil {
		return errs.Wrap(err, "failed to build confirmation task")
	}

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(e.cfg.EmailMaxRetry),
		asynq.Timeout(e.cfg.EmailTimeout),
		asynq.TaskID(TypePurchaseConfirmation+":"+msg.OrderReference),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			e.logger.Info("confirmation email already queued", slog.String("order_reference", msg.OrderReference))
			return nil
		}
		return errs.Mark(errs.Wrap(err, "failed to enqueue confirmation email"), errs.ErrStorageUnavailable)
	}

	e.logger.Info("confirmation email queued",
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue),
		slog.String("order_reference", msg.OrderReference),
	)
	return nil
}
