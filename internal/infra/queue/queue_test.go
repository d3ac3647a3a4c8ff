//go:build unit

package queue_test

import (
	"context"
	"errors"
	"testing"

	"plugin-storefront/internal/infra/queue"
	"plugin-storefront/internal/usecase/shared"
	"plugin-storefront/tests/common/kvtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, body string
}

type fakeSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeSender) SendEmail(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}

func confirmation() shared.PurchaseConfirmation {
	return shared.PurchaseConfirmation{
		OrderReference: "order-1",
		Email:          "buyer@example.com",
		ProductID:      "foam",
		ProductName:    "Foam",
		PromoCode:      "KVRFOAM",
	}
}

func TestEnqueuer_EnqueuePurchaseConfirmation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	enqueuer := queue.NewEnqueuer(client, kvtest.Config().Queue, kvtest.DiscardLogger())

	require.NoError(t, enqueuer.EnqueuePurchaseConfirmation(t.Context(), confirmation()))
	require.NoError(t, enqueuer.EnqueuePurchaseConfirmation(t.Context(), confirmation()), "same order is a no-op")

	pending, err := mr.List("asynq:{default}:pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestEmailTaskHandler_ProcessTask(t *testing.T) {
	t.Run("renders and sends", func(t *testing.T) {
		sender := &fakeSender{}
		handler := queue.NewEmailTaskHandler(sender, kvtest.DiscardLogger())

		task, err := queue.NewPurchaseConfirmationTask(confirmation())
		require.NoError(t, err)
		require.NoError(t, handler.ProcessTask(t.Context(), task))

		require.Len(t, sender.sent, 1)
		assert.Equal(t, "buyer@example.com", sender.sent[0].to)
		assert.Contains(t, sender.sent[0].subject, "order-1")
		assert.Contains(t, sender.sent[0].body, "KVRFOAM")
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		handler := queue.NewEmailTaskHandler(&fakeSender{}, kvtest.DiscardLogger())

		err := handler.ProcessTask(t.Context(), asynq.NewTask(queue.TypePurchaseConfirmation, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("smtp failure is retried", func(t *testing.T) {
		handler := queue.NewEmailTaskHandler(&fakeSender{err: errors.New("421 try later")}, kvtest.DiscardLogger())

		task, err := queue.NewPurchaseConfirmationTask(confirmation())
		require.NoError(t, err)
		err = handler.ProcessTask(t.Context(), task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestRenderConfirmation_EscapesInput(t *testing.T) {
	msg := confirmation()
	msg.ProductName = "<script>alert(1)</script>"
	msg.PromoCode = ""

	body, err := queue.RenderConfirmation(msg)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "Promo code")
}
