package promo

import (
	"errors"
	"time"
)

// RejectionError is a terminal refusal that callers show to the user.
type RejectionError struct {
	Cause           error
	NextReleaseTime *time.Time
}

func NewRejection(reason Reason, nextRelease *time.Time) *RejectionError {
	var cause error
	switch reason {
	case ReasonAlreadyClaimed:
		cause = ErrAlreadyClaimed
	case ReasonNotYetReleased:
		cause = ErrNotYetReleased
	default:
		cause = ErrExhausted
	}
	return &RejectionError{Cause: cause, NextReleaseTime: nextRelease}
}

func (e *RejectionError) Error() string {
	return e.Cause.Error()
}

func (e *RejectionError) Unwrap() error {
	return e.Cause
}

func (e *RejectionError) Reason() Reason {
	switch {
	case errors.Is(e.Cause, ErrAlreadyClaimed):
		return ReasonAlreadyClaimed
	case errors.Is(e.Cause, ErrNotYetReleased):
		return ReasonNotYetReleased
	default:
		return ReasonExhausted
	}
}
