package promo

import (
	"math/rand/v2"
	"sort"
	"time"
)

// Schedule is the persisted list of instants at which units of a timed promo
// become claimable. ReleaseTimes is sorted ascending and has MaxUses entries.
type Schedule struct {
	StartTime    time.Time
	ReleaseTimes []time.Time
}

// GenerateSchedule places ImmediateReleases units at start and spreads the
// rest uniformly over [start, start+duration). Times have millisecond
// precision so they survive storage unchanged.
func GenerateSchedule(def Definition, start time.Time, rng *rand.Rand) (Schedule, error) {
	if !def.IsTimed() {
		return Schedule{}, ErrNotTimed
	}
	start = start.UTC().Truncate(time.Millisecond)
	window := def.TimedRelease.Duration().Milliseconds()

	times := make([]time.Time, def.MaxUses)
	immediate := min(def.TimedRelease.ImmediateReleases, def.MaxUses)
	for i := range times {
		if i < immediate || window <= 0 {
			times[i] = start
			continue
		}
		times[i] = start.Add(time.Duration(rng.Int64N(window)) * time.Millisecond)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	return Schedule{StartTime: start, ReleaseTimes: times}, nil
}

func (s Schedule) Size() int {
	return len(s.ReleaseTimes)
}

// ReleasedCount is the number of release times at or before now.
func (s Schedule) ReleasedCount(now time.Time) int {
	return sort.Search(len(s.ReleaseTimes), func(i int) bool {
		return s.ReleaseTimes[i].After(now)
	})
}

// ObservedAt never lets a reader see the schedule before it started. The
// caller may have read its clock before the schedule was created.
func (s Schedule) ObservedAt(now time.Time) time.Time {
	if now.Before(s.StartTime) {
		return s.StartTime
	}
	return now
}

func (s Schedule) NextRelease(now time.Time) (time.Time, bool) {
	idx := s.ReleasedCount(now)
	if idx >= len(s.ReleaseTimes) {
		return time.Time{}, false
	}
	return s.ReleaseTimes[idx], true
}

func (s Schedule) EndTime(def Definition) time.Time {
	if !def.IsTimed() {
		return s.StartTime
	}
	return s.StartTime.Add(def.TimedRelease.Duration())
}
