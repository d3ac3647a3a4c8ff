package queries

import (
	"context"
	"log/slog"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/pkg/clock"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/usecase/release"
	"plugin-storefront/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// PromoQueries is the read path that gates claim UI. It never takes a hold.
type PromoQueries interface {
	GetStats(ctx context.Context, code string) (*promo.Stats, error)
	// PeekStats is the admin view. It ignores the active flag and never
	// creates a schedule, so an unscheduled promo stays unscheduled.
	PeekStats(ctx context.Context, code string) (*promo.Stats, error)
	IsAvailable(ctx context.Context, code, email string) (*promo.Availability, error)
	ClaimedCount(ctx context.Context, code string) (int, error)
	HasEmailClaimed(ctx context.Context, code, email string) (bool, error)
	Redemptions(ctx context.Context, code string) ([]promo.Redemption, error)
}

type promoQueriesImpl struct {
	catalog   *promo.Catalog
	scheduler release.Scheduler
	ledger    shared.LedgerStore
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPromoQueries(catalog *promo.Catalog, scheduler release.Scheduler, ledger shared.LedgerStore, clk clock.Clock, logger *slog.Logger) PromoQueries {
	return &promoQueriesImpl{
		catalog:   catalog,
		scheduler: scheduler,
		ledger:    ledger,
		clock:     clk,
		logger:    logger,
	}
}

func (q *promoQueriesImpl) GetStats(ctx context.Context, code string) (*promo.Stats, error) {
	def, ok := q.catalog.Lookup(code)
	if !ok {
		return nil, promo.ErrUnknownCode
	}
	stats, err := q.stats(ctx, def)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (q *promoQueriesImpl) PeekStats(ctx context.Context, code string) (*promo.Stats, error) {
	def, ok := q.catalog.Definition(code)
	if !ok {
		return nil, promo.ErrUnknownCode
	}

	var (
		sched  *promo.Schedule
		ledger promo.LedgerSnapshot
	)
	now := q.clock.Now()
	g, gctx := errgroup.WithContext(ctx)
	if def.IsTimed() {
		g.Go(func() error {
			var err error
			sched, err = q.scheduler.Current(gctx, def.Code)
			return err
		})
	}
	g.Go(func() error {
		var err error
		ledger, err = q.ledger.Snapshot(gctx, def.Code, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "failed to read promo stats")
	}
	if sched != nil {
		now = sched.ObservedAt(now)
	}

	stats := promo.ComputeStats(def, sched, ledger, now)
	return &stats, nil
}

func (q *promoQueriesImpl) IsAvailable(ctx context.Context, code, email string) (*promo.Availability, error) {
	def, ok := q.catalog.Lookup(code)
	if !ok {
		return nil, promo.ErrUnknownCode
	}

	var (
		stats promo.Stats
		state promo.EmailState
	)
	now := q.clock.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = q.statsAt(gctx, def, now)
		return err
	})
	if email = promo.NormalizeEmail(email); email != "" {
		g.Go(func() error {
			var err error
			state, err = q.ledger.EmailState(gctx, def.Code, email, now)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errs.Wrap(err, "failed to evaluate availability")
	}

	availability := promo.Evaluate(stats, state)
	return &availability, nil
}

func (q *promoQueriesImpl) ClaimedCount(ctx context.Context, code string) (int, error) {
	def, ok := q.catalog.Definition(code)
	if !ok {
		return 0, promo.ErrUnknownCode
	}
	snap, err := q.ledger.Snapshot(ctx, def.Code, q.clock.Now())
	if err != nil {
		return 0, errs.Wrap(err, "failed to read claim count")
	}
	return snap.Claimed, nil
}

func (q *promoQueriesImpl) HasEmailClaimed(ctx context.Context, code, email string) (bool, error) {
	def, ok := q.catalog.Definition(code)
	if !ok {
		return false, promo.ErrUnknownCode
	}
	state, err := q.ledger.EmailState(ctx, def.Code, promo.NormalizeEmail(email), q.clock.Now())
	if err != nil {
		return false, errs.Wrap(err, "failed to read email state")
	}
	return state.Claimed, nil
}

func (q *promoQueriesImpl) Redemptions(ctx context.Context, code string) ([]promo.Redemption, error) {
	def, ok := q.catalog.Definition(code)
	if !ok {
		return nil, promo.ErrUnknownCode
	}
	log, err := q.ledger.Redemptions(ctx, def.Code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read redemption log")
	}
	return log, nil
}

func (q *promoQueriesImpl) stats(ctx context.Context, def promo.Definition) (promo.Stats, error) {
	return q.statsAt(ctx, def, q.clock.Now())
}

// statsAt reads the schedule and the ledger concurrently. The schedule is
// created on first read of a timed promo.
func (q *promoQueriesImpl) statsAt(ctx context.Context, def promo.Definition, now time.Time) (promo.Stats, error) {
	var (
		sched  *promo.Schedule
		ledger promo.LedgerSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	if def.IsTimed() {
		g.Go(func() error {
			var err error
			sched, err = q.scheduler.EnsureSchedule(gctx, def)
			return err
		})
	}
	g.Go(func() error {
		var err error
		ledger, err = q.ledger.Snapshot(gctx, def.Code, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return promo.Stats{}, errs.Wrap(err, "failed to compute promo stats")
	}

	if sched != nil {
		now = sched.ObservedAt(now)
	}
	stats := promo.ComputeStats(def, sched, ledger, now)
	q.logger.Debug("promo stats computed",
		slog.String("code", def.Code),
		slog.Int("claimed", stats.Claimed),
		slog.Int("held", stats.Held),
		slog.Int("remaining", stats.Remaining),
	)
	return stats, nil
}
