package queue

import (
	"encoding/json"

	"plugin-storefront/internal/usecase/shared"

	"github.com/hibiken/asynq"
)

const (
	QueueDefault = "default"

	TypePurchaseConfirmation = "email:purchase_confirmation"
)

func NewPurchaseConfirmationTask(msg shared.PurchaseConfirmation) (*asynq.Task, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurchaseConfirmation, payload), nil
}
