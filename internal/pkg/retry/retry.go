package retry

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"plugin-storefront/internal/pkg/errs"
)

type Policy struct {
	MaxRetries int
	Base       time.Duration
}

var DefaultPolicy = Policy{MaxRetries: 3, Base: 50 * time.Millisecond}

// Do runs fn until it succeeds, returns an error retryable rejects, or the
// policy is exhausted.
func Do(ctx context.Context, policy Policy, retryable func(error) bool, fn func(ctx context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if attempt >= policy.MaxRetries {
			return errs.Mark(err, errs.ErrMaxRetriesExceeded)
		}

		waitTime := Backoff(attempt, policy.Base)

		slog.Warn("retrying operation due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func Backoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}
