package promo

import (
	"time"
)

// LedgerSnapshot is the redemption state of one code at a point in time.
// Held counts only holds that have not expired.
type LedgerSnapshot struct {
	Claimed int
	Held    int
}

type EmailState struct {
	Claimed bool
	Held    bool
}

type Stats struct {
	Code            string
	ProductID       string
	DiscountPercent int
	Total           int
	Claimed         int
	Held            int
	Remaining       int
	Active          bool
	Timed           *TimedStats
}

type TimedStats struct {
	Released        int
	AvailableNow    int
	NextReleaseTime *time.Time
	PromoStartTime  time.Time
	PromoEndTime    time.Time
}

type Availability struct {
	Available       bool
	Reason          Reason
	AllClaimed      bool
	NextReleaseTime *time.Time
	AvailableNow    int
	Remaining       int
}

// ComputeStats derives the availability view. sched must be non-nil for
// timed promos.
func ComputeStats(def Definition, sched *Schedule, ledger LedgerSnapshot, now time.Time) Stats {
	committed := ledger.Claimed + ledger.Held
	stats := Stats{
		Code:            def.Code,
		ProductID:       def.LinkedProductID,
		DiscountPercent: def.DiscountPercent,
		Total:           def.MaxUses,
		Claimed:         ledger.Claimed,
		Held:            ledger.Held,
		Remaining:       max(0, def.MaxUses-committed),
		Active:          def.Active,
	}
	if !def.IsTimed() || sched == nil {
		return stats
	}

	released := sched.ReleasedCount(now)
	timed := &TimedStats{
		Released:       released,
		AvailableNow:   max(0, released-committed),
		PromoStartTime: sched.StartTime,
		PromoEndTime:   sched.EndTime(def),
	}
	if next, ok := sched.NextRelease(now); ok {
		timed.NextReleaseTime = &next
	}
	stats.Timed = timed
	return stats
}

// Evaluate decides whether a unit can be handed to the caller. An email with
// a live hold is treated as having claimed already.
func Evaluate(stats Stats, email EmailState) Availability {
	a := Availability{Remaining: stats.Remaining, AvailableNow: stats.Remaining}
	if stats.Timed != nil {
		a.AvailableNow = stats.Timed.AvailableNow
	}

	switch {
	case stats.Claimed >= stats.Total:
		a.AllClaimed = true
		a.Reason = ReasonExhausted
	case email.Claimed || email.Held:
		a.Reason = ReasonAlreadyClaimed
	case stats.Remaining == 0:
		a.Reason = ReasonExhausted
	case a.AvailableNow > 0:
		a.Available = true
	default:
		a.Reason = ReasonNotYetReleased
		if stats.Timed != nil {
			a.NextReleaseTime = stats.Timed.NextReleaseTime
		}
	}
	return a
}

// Err converts a negative availability into a RejectionError.
func (a Availability) Err() error {
	if a.Available {
		return nil
	}
	return NewRejection(a.Reason, a.NextReleaseTime)
}
