//go:build unit

package queries_test

import (
	"fmt"
	"testing"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/infra/catalog"
	"plugin-storefront/internal/pkg/clock"
	"plugin-storefront/internal/usecase/commands"
	"plugin-storefront/tests/common/promotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoQueries_IsAvailable(t *testing.T) {
	t.Run("immediate releases are claimable at start", func(t *testing.T) {
		env := promotest.NewEnv(t)

		availability, err := env.Queries.IsAvailable(t.Context(), "ABRACADABRA20", "")
		require.NoError(t, err)
		assert.True(t, availability.Available)
		assert.GreaterOrEqual(t, availability.AvailableNow, 5)
		assert.Equal(t, 25, availability.Remaining)
	})

	t.Run("email with a live hold", func(t *testing.T) {
		env := promotest.NewEnv(t)
		_, err := env.Commands.Reserve(t.Context(), "ABRACADABRA20", "user@example.com")
		require.NoError(t, err)

		availability, err := env.Queries.IsAvailable(t.Context(), "ABRACADABRA20", "User@Example.com")
		require.NoError(t, err)
		assert.False(t, availability.Available)
		assert.Equal(t, promo.ReasonAlreadyClaimed, availability.Reason)

		other, err := env.Queries.IsAvailable(t.Context(), "ABRACADABRA20", "other@example.com")
		require.NoError(t, err)
		assert.True(t, other.Available)
		assert.Equal(t, 4, other.AvailableNow)
	})

	t.Run("release count is monotonic over the promo window", func(t *testing.T) {
		env := promotest.NewEnv(t)

		previous := -1
		for hour := 0; hour <= 25; hour++ {
			env.Clock.Set(promotest.Start.Add(time.Duration(hour) * time.Hour))
			stats, err := env.Queries.GetStats(t.Context(), "ABRACADABRA20")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, stats.Timed.Released, previous)
			previous = stats.Timed.Released
		}
		assert.Equal(t, 25, previous)
	})

	t.Run("all claimed wins over release state", func(t *testing.T) {
		env := promotest.NewEnv(t)
		env.Clock.Set(promotest.Start.Add(25 * time.Hour))
		for i := range 25 {
			_, err := env.Commands.Record(t.Context(), commands.RecordInput{
				Code:           "ABRACADABRA20",
				Email:          fmt.Sprintf("buyer%d@example.com", i),
				OrderReference: fmt.Sprintf("order-%d", i),
			})
			require.NoError(t, err)
		}

		availability, err := env.Queries.IsAvailable(t.Context(), "ABRACADABRA20", "new@example.com")
		require.NoError(t, err)
		assert.False(t, availability.Available)
		assert.True(t, availability.AllClaimed)
		assert.Nil(t, availability.NextReleaseTime)
	})

	t.Run("unknown code", func(t *testing.T) {
		env := promotest.NewEnv(t)
		_, err := env.Queries.IsAvailable(t.Context(), "MISSING", "user@example.com")
		assert.ErrorIs(t, err, promo.ErrUnknownCode)
		_, err = env.Queries.GetStats(t.Context(), "MISSING")
		assert.ErrorIs(t, err, promo.ErrUnknownCode)
	})
}

func TestPromoQueries_GetStats_OpenPromo(t *testing.T) {
	env := promotest.NewEnv(t)

	stats, err := env.Queries.GetStats(t.Context(), "kvrfoam")
	require.NoError(t, err)
	assert.Equal(t, "KVRFOAM", stats.Code)
	assert.Equal(t, "foam", stats.ProductID)
	assert.Equal(t, 1000, stats.Total)
	assert.Nil(t, stats.Timed)

	stored, err := env.Schedules.Get(t.Context(), "KVRFOAM")
	require.NoError(t, err)
	assert.Nil(t, stored, "open promos never get a schedule")
}

func TestPromoQueries_LedgerReads(t *testing.T) {
	env := promotest.NewEnv(t)
	ctx := t.Context()

	count, err := env.Queries.ClaimedCount(ctx, "KVRFOAM")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = env.Commands.Reserve(ctx, "KVRFOAM", "held@example.com")
	require.NoError(t, err)
	_, err = env.Commands.Record(ctx, commands.RecordInput{
		Code:           "kvrfoam",
		Email:          "Buyer@Example.com",
		OrderReference: "order-1",
	})
	require.NoError(t, err)

	count, err = env.Queries.ClaimedCount(ctx, "KVRFOAM")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "holds do not count as claims")

	claimed, err := env.Queries.HasEmailClaimed(ctx, "KVRFOAM", " buyer@example.com ")
	require.NoError(t, err)
	assert.True(t, claimed)

	held, err := env.Queries.HasEmailClaimed(ctx, "KVRFOAM", "held@example.com")
	require.NoError(t, err)
	assert.False(t, held)

	_, err = env.Queries.ClaimedCount(ctx, "MISSING")
	assert.ErrorIs(t, err, promo.ErrUnknownCode)
}

func TestPromoQueries_FirstReadWithAdvancingClock(t *testing.T) {
	// every clock read lands on a later millisecond than the one before
	newEnv := func(t *testing.T) *promotest.Env {
		return promotest.NewEnvWithClock(t, clock.NewStepClock(promotest.Start.Add(500*time.Microsecond), time.Millisecond))
	}

	t.Run("GetStats sees the immediate releases", func(t *testing.T) {
		env := newEnv(t)

		stats, err := env.Queries.GetStats(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)
		require.NotNil(t, stats.Timed)
		assert.GreaterOrEqual(t, stats.Timed.Released, 5)
		assert.GreaterOrEqual(t, stats.Timed.AvailableNow, 5)
	})

	t.Run("IsAvailable is open on the first call", func(t *testing.T) {
		env := newEnv(t)

		availability, err := env.Queries.IsAvailable(t.Context(), "ABRACADABRA20", "first@example.com")
		require.NoError(t, err)
		assert.True(t, availability.Available)
		assert.GreaterOrEqual(t, availability.AvailableNow, 5)
	})

	t.Run("Reserve succeeds on a fresh promo", func(t *testing.T) {
		env := newEnv(t)

		hold, err := env.Commands.Reserve(t.Context(), "ABRACADABRA20", "first@example.com")
		require.NoError(t, err)
		assert.Equal(t, "ABRACADABRA20", hold.Code)
	})
}

func TestPromoQueries_PeekStats(t *testing.T) {
	t.Run("does not schedule a timed promo", func(t *testing.T) {
		env := promotest.NewEnv(t)

		stats, err := env.Queries.PeekStats(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)
		assert.Nil(t, stats.Timed)
		assert.Equal(t, 25, stats.Remaining)

		stored, err := env.Schedules.Get(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("stays unscheduled after a schedule reset", func(t *testing.T) {
		env := promotest.NewEnv(t)
		_, err := env.Queries.GetStats(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)

		env.Clock.Add(48 * time.Hour)
		require.NoError(t, env.Commands.Reset(t.Context(), "ABRACADABRA20", commands.ResetParams{ResetSchedule: true}))

		stats, err := env.Queries.PeekStats(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)
		assert.Nil(t, stats.Timed)

		stored, err := env.Schedules.Get(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("shows the existing schedule", func(t *testing.T) {
		env := promotest.NewEnv(t)
		_, err := env.Queries.GetStats(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)

		stats, err := env.Queries.PeekStats(t.Context(), "ABRACADABRA20")
		require.NoError(t, err)
		require.NotNil(t, stats.Timed)
		assert.True(t, stats.Timed.PromoStartTime.Equal(promotest.Start))
	})

	t.Run("reports inactive codes", func(t *testing.T) {
		promos := catalog.DefaultPromos()
		for i := range promos {
			promos[i].Active = false
		}
		catalogs, err := catalog.Build(catalog.DefaultProducts(), promos)
		require.NoError(t, err)
		env := promotest.NewEnvWithCatalogs(t, catalogs)

		require.NoError(t, env.Commands.Reset(t.Context(), "KVRFOAM", commands.ResetParams{}))

		stats, err := env.Queries.PeekStats(t.Context(), "KVRFOAM")
		require.NoError(t, err)
		assert.False(t, stats.Active)

		_, err = env.Queries.GetStats(t.Context(), "KVRFOAM")
		assert.ErrorIs(t, err, promo.ErrUnknownCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		env := promotest.NewEnv(t)
		_, err := env.Queries.PeekStats(t.Context(), "MISSING")
		assert.ErrorIs(t, err, promo.ErrUnknownCode)
	})
}
