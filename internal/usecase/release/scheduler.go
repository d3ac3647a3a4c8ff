package release

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/pkg/clock"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/usecase/shared"
)

// Scheduler lazily creates the release schedule of a timed promo. The first
// stored schedule wins and is never regenerated until Reset.
type Scheduler interface {
	EnsureSchedule(ctx context.Context, def promo.Definition) (*promo.Schedule, error)
	// Current returns the stored schedule, or nil while the promo is unscheduled.
	Current(ctx context.Context, code string) (*promo.Schedule, error)
	Reset(ctx context.Context, code string) error
}

type schedulerImpl struct {
	store  shared.ScheduleStore
	clock  clock.Clock
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewScheduler(store shared.ScheduleStore, clk clock.Clock, rng *rand.Rand, logger *slog.Logger) Scheduler {
	return &schedulerImpl{
		store:  store,
		clock:  clk,
		rng:    rng,
		logger: logger,
	}
}

func (s *schedulerImpl) EnsureSchedule(ctx context.Context, def promo.Definition) (*promo.Schedule, error) {
	if !def.IsTimed() {
		return nil, promo.ErrNotTimed
	}

	existing, err := s.store.Get(ctx, def.Code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read release schedule")
	}
	if existing != nil {
		return existing, nil
	}

	sched, err := s.generate(def)
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreateIfAbsent(ctx, def.Code, sched)
	if err != nil {
		return nil, errs.Wrap(err, "failed to store release schedule")
	}
	if created {
		s.logger.Info("release schedule created",
			slog.String("code", def.Code),
			slog.Time("start_time", sched.StartTime),
			slog.Int("size", sched.Size()),
		)
		return &sched, nil
	}

	// lost the race; the stored schedule is authoritative
	winner, err := s.store.Get(ctx, def.Code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read release schedule")
	}
	if winner == nil {
		return nil, errs.Mark(errs.New("schedule vanished after create conflict"), errs.ErrStorageUnavailable)
	}
	return winner, nil
}

func (s *schedulerImpl) Current(ctx context.Context, code string) (*promo.Schedule, error) {
	sched, err := s.store.Get(ctx, promo.NormalizeCode(code))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read release schedule")
	}
	return sched, nil
}

func (s *schedulerImpl) Reset(ctx context.Context, code string) error {
	if err := s.store.Delete(ctx, promo.NormalizeCode(code)); err != nil {
		return errs.Wrap(err, "failed to delete release schedule")
	}
	s.logger.Info("release schedule reset", slog.String("code", code))
	return nil
}

func (s *schedulerImpl) generate(def promo.Definition) (promo.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return promo.GenerateSchedule(def, s.clock.Now(), s.rng)
}
