//go:build unit

package kv_test

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/infra/kv"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/tests/common/kvtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func timedDef() promo.Definition {
	return promo.Definition{
		Code:            "ABRACADABRA20",
		DiscountPercent: 20,
		MaxUses:         25,
		LinkedProductID: "abracadabra",
		Active:          true,
		TimedRelease:    &promo.TimedRelease{DurationHours: 24, ImmediateReleases: 5},
	}
}

func TestScheduleStore(t *testing.T) {
	client, mr := kvtest.NewMiniRedis(t)
	store := kv.NewScheduleStore(client, kvtest.Config(), kvtest.DiscardLogger())
	ctx := t.Context()

	sched, err := promo.GenerateSchedule(timedDef(), start, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	t.Run("absent schedule reads as nil", func(t *testing.T) {
		got, err := store.Get(ctx, "ABRACADABRA20")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create then read round-trips exactly", func(t *testing.T) {
		created, err := store.CreateIfAbsent(ctx, "ABRACADABRA20", sched)
		require.NoError(t, err)
		require.True(t, created)

		got, err := store.Get(ctx, "ABRACADABRA20")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.StartTime.Equal(sched.StartTime))
		require.Len(t, got.ReleaseTimes, len(sched.ReleaseTimes))
		for i := range sched.ReleaseTimes {
			assert.True(t, got.ReleaseTimes[i].Equal(sched.ReleaseTimes[i]), "entry %d", i)
		}
		assert.True(t, mr.Exists("promo-test:{ABRACADABRA20}:schedule"))
	})

	t.Run("second create is refused and keeps the first schedule", func(t *testing.T) {
		other, err := promo.GenerateSchedule(timedDef(), start.Add(time.Hour), rand.New(rand.NewPCG(9, 9)))
		require.NoError(t, err)

		created, err := store.CreateIfAbsent(ctx, "ABRACADABRA20", other)
		require.NoError(t, err)
		assert.False(t, created)

		got, err := store.Get(ctx, "ABRACADABRA20")
		require.NoError(t, err)
		assert.True(t, got.StartTime.Equal(start))
	})

	t.Run("concurrent creates store exactly one", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make(chan bool, 10)
		for i := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s, _ := promo.GenerateSchedule(timedDef(), start, rand.New(rand.NewPCG(uint64(i), 1)))
				created, err := store.CreateIfAbsent(ctx, "RACE", s)
				assert.NoError(t, err)
				results <- created
			}()
		}
		wg.Wait()
		close(results)

		wins := 0
		for created := range results {
			if created {
				wins++
			}
		}
		assert.Equal(t, 1, wins)
	})

	t.Run("delete removes the schedule", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "ABRACADABRA20"))
		got, err := store.Get(ctx, "ABRACADABRA20")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt value is reported", func(t *testing.T) {
		require.NoError(t, mr.Set("promo-test:{BROKEN}:schedule", "not-json"))
		_, err := store.Get(ctx, "BROKEN")
		assert.Error(t, err)
	})

	t.Run("store outage is marked as storage unavailable", func(t *testing.T) {
		mr.SetError("ERR simulated outage")
		defer mr.SetError("")

		_, err := store.Get(ctx, "ABRACADABRA20")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorageUnavailable))
	})
}
