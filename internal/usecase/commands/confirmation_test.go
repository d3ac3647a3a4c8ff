//go:build unit

package commands_test

import (
	"errors"
	"testing"
	"time"

	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/pkg/ptr"
	"plugin-storefront/internal/usecase/commands"
	"plugin-storefront/internal/usecase/shared"
	"plugin-storefront/tests/common/kvtest"
	"plugin-storefront/tests/common/promotest"
	sharedmock "plugin-storefront/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPayments(t *testing.T, env *promotest.Env) (commands.PaymentCommands, *sharedmock.MockTaskQueue) {
	t.Helper()
	queue := sharedmock.NewMockTaskQueue(gomock.NewController(t))
	return commands.NewPaymentCommands(env.Catalogs.Products, env.Commands, env.Tokens, queue, kvtest.DiscardLogger()), queue
}

func completedEvent(t *testing.T, env *promotest.Env, email string) commands.PaymentEvent {
	t.Helper()
	hold, err := env.Commands.Reserve(t.Context(), "KVRFOAM", email)
	require.NoError(t, err)
	return commands.PaymentEvent{
		ID:             "evt_1",
		Type:           commands.EventCheckoutCompleted,
		OrderReference: "order-1",
		Email:          email,
		Metadata: map[string]string{
			commands.MetaProductID: "foam",
			commands.MetaEmail:     email,
			commands.MetaPromoCode: "KVRFOAM",
			commands.MetaHoldToken: hold.Token,
		},
	}
}

func TestPaymentCommands_ConfirmPayment(t *testing.T) {
	t.Run("records the promo and queues the email once per order", func(t *testing.T) {
		env := promotest.NewEnv(t)
		payments, queue := newPayments(t, env)
		event := completedEvent(t, env, "buyer@example.com")

		queue.EXPECT().EnqueuePurchaseConfirmation(gomock.Any(), shared.PurchaseConfirmation{
			OrderReference: "order-1",
			Email:          "buyer@example.com",
			ProductID:      "foam",
			ProductName:    "Foam",
			PromoCode:      "KVRFOAM",
		}).Return(nil).Times(2)

		res, err := payments.ConfirmPayment(t.Context(), event)
		require.NoError(t, err)
		assert.Equal(t, shared.ClaimConfirmedHold, res.Outcome)

		res, err = payments.ConfirmPayment(t.Context(), event)
		require.NoError(t, err)
		assert.Equal(t, shared.ClaimDuplicate, res.Outcome)

		count, err := env.Queries.ClaimedCount(t.Context(), "KVRFOAM")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("late payment after hold expiry still records", func(t *testing.T) {
		env := promotest.NewEnv(t)
		payments, queue := newPayments(t, env)
		event := completedEvent(t, env, "buyer@example.com")
		env.Clock.Add(time.Hour)

		queue.EXPECT().EnqueuePurchaseConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		res, err := payments.ConfirmPayment(t.Context(), event)
		require.NoError(t, err)
		assert.Equal(t, shared.ClaimDirect, res.Outcome)
	})

	t.Run("oversubscribed payment is acknowledged", func(t *testing.T) {
		env := promotest.NewEnv(t)
		payments, queue := newPayments(t, env)
		event := completedEvent(t, env, "buyer@example.com")
		env.Clock.Add(time.Hour)
		require.NoError(t, env.Commands.Reset(t.Context(), "KVRFOAM", commands.ResetParams{Count: ptr.Of(1000)}))

		queue.EXPECT().EnqueuePurchaseConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		res, err := payments.ConfirmPayment(t.Context(), event)
		require.NoError(t, err)
		assert.True(t, res.Oversubscribed)
	})

	t.Run("tampered or mismatched hold token", func(t *testing.T) {
		env := promotest.NewEnv(t)
		payments, _ := newPayments(t, env)
		event := completedEvent(t, env, "buyer@example.com")

		event.Metadata[commands.MetaEmail] = "thief@example.com"
		event.Email = "thief@example.com"
		_, err := payments.ConfirmPayment(t.Context(), event)
		assert.True(t, errs.Is(err, errs.ErrInvalidHoldToken))

		event.Metadata[commands.MetaHoldToken] = "not-a-token"
		_, err = payments.ConfirmPayment(t.Context(), event)
		assert.True(t, errs.Is(err, errs.ErrInvalidHoldToken))
	})

	t.Run("purchase without promo only queues the email", func(t *testing.T) {
		env := promotest.NewEnv(t)
		payments, queue := newPayments(t, env)

		queue.EXPECT().EnqueuePurchaseConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		res, err := payments.ConfirmPayment(t.Context(), commands.PaymentEvent{
			ID:       "evt_2",
			Type:     commands.EventCheckoutCompleted,
			Metadata: map[string]string{commands.MetaProductID: "foam", commands.MetaEmail: "buyer@example.com"},
		})
		require.NoError(t, err)
		assert.Empty(t, res.Outcome)
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		env := promotest.NewEnv(t)
		payments, _ := newPayments(t, env)

		res, err := payments.ConfirmPayment(t.Context(), commands.PaymentEvent{ID: "evt_3", Type: "checkout.expired"})
		require.NoError(t, err)
		assert.True(t, res.Ignored)
	})

	t.Run("queue failure surfaces so the gateway retries", func(t *testing.T) {
		env := promotest.NewEnv(t)
		payments, queue := newPayments(t, env)
		event := completedEvent(t, env, "buyer@example.com")

		queue.EXPECT().EnqueuePurchaseConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := payments.ConfirmPayment(t.Context(), event)
		require.Error(t, err)

		count, err := env.Queries.ClaimedCount(t.Context(), "KVRFOAM")
		require.NoError(t, err)
		assert.Equal(t, 1, count, "the redelivery will be a duplicate")
	})
}
