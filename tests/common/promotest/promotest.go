//go:build unit || e2e

package promotest

import (
	"math/rand/v2"
	"testing"
	"time"

	"plugin-storefront/internal/infra/catalog"
	"plugin-storefront/internal/infra/kv"
	"plugin-storefront/internal/pkg/clock"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/jwt"
	"plugin-storefront/internal/usecase/commands"
	"plugin-storefront/internal/usecase/queries"
	"plugin-storefront/internal/usecase/release"
	"plugin-storefront/tests/common/kvtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

var Start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// Env wires the promo usecases to real go-redis stores on miniredis.
type Env struct {
	Redis     *miniredis.Miniredis
	Clock     *clock.MockClock
	Config    config.Config
	Catalogs  *catalog.Catalogs
	Schedules *kv.ScheduleStore
	Ledger    *kv.LedgerStore
	Tokens    *jwt.Service
	Scheduler release.Scheduler
	Queries   queries.PromoQueries
	Commands  commands.PromoCommands
}

func NewEnv(t *testing.T) *Env {
	t.Helper()
	catalogs, err := catalog.Build(catalog.DefaultProducts(), catalog.DefaultPromos())
	require.NoError(t, err)
	return NewEnvWithCatalogs(t, catalogs)
}

func NewEnvWithCatalogs(t *testing.T, catalogs *catalog.Catalogs) *Env {
	t.Helper()
	clk := clock.NewMockClock(Start)
	env := newEnv(t, catalogs, clk)
	env.Clock = clk
	return env
}

// NewEnvWithClock leaves Env.Clock nil; the caller owns clk.
func NewEnvWithClock(t *testing.T, clk clock.Clock) *Env {
	t.Helper()
	catalogs, err := catalog.Build(catalog.DefaultProducts(), catalog.DefaultPromos())
	require.NoError(t, err)
	return newEnv(t, catalogs, clk)
}

func newEnv(t *testing.T, catalogs *catalog.Catalogs, clk clock.Clock) *Env {
	t.Helper()

	client, mr := kvtest.NewMiniRedis(t)
	cfg := kvtest.Config()
	logger := kvtest.DiscardLogger()

	env := &Env{
		Redis:     mr,
		Config:    cfg,
		Catalogs:  catalogs,
		Schedules: kv.NewScheduleStore(client, cfg, logger),
		Ledger:    kv.NewLedgerStore(client, cfg, logger),
		Tokens:    jwt.NewService(cfg.Hold.TokenSecret),
	}
	env.Scheduler = release.NewScheduler(env.Schedules, clk, rand.New(rand.NewPCG(42, 1024)), logger)
	env.Queries = queries.NewPromoQueries(catalogs.Promos, env.Scheduler, env.Ledger, clk, logger)
	env.Commands = commands.NewPromoCommands(catalogs.Promos, env.Queries, env.Scheduler, env.Ledger, env.Tokens, clk, cfg, logger)
	return env
}
