package promo

import "errors"

var (
	ErrUnknownCode       = errors.New("unknown promo code")
	ErrAlreadyClaimed    = errors.New("promo already claimed by this email")
	ErrExhausted         = errors.New("promo exhausted")
	ErrNotYetReleased    = errors.New("promo not yet released")
	ErrInvalidDefinition = errors.New("invalid promo definition")
	ErrDuplicateCode     = errors.New("duplicate promo code")
	ErrNotTimed          = errors.New("promo has no timed release")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidResetCount = errors.New("reset count out of range")
)

type Reason string

const (
	ReasonNone           Reason = ""
	ReasonAlreadyClaimed Reason = "already_claimed"
	ReasonExhausted      Reason = "exhausted"
	ReasonNotYetReleased Reason = "not_yet_released"
)
