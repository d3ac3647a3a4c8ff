package shared

import (
	"context"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
)

// ScheduleStore persists one release schedule per promo code as a single value.
type ScheduleStore interface {
	// Get returns nil without error when no schedule exists.
	Get(ctx context.Context, code string) (*promo.Schedule, error)
	// CreateIfAbsent reports whether sched was stored.
	CreateIfAbsent(ctx context.Context, code string, sched promo.Schedule) (bool, error)
	Delete(ctx context.Context, code string) error
}

// LedgerStore owns claim counters, claimed emails, holds and the redemption
// log. Every write is atomic per code.
type LedgerStore interface {
	Snapshot(ctx context.Context, code string, now time.Time) (promo.LedgerSnapshot, error)
	EmailState(ctx context.Context, code, email string, now time.Time) (promo.EmailState, error)
	// PlaceHold fails with promo.ErrAlreadyClaimed, promo.ErrExhausted or
	// promo.ErrNotYetReleased.
	PlaceHold(ctx context.Context, req HoldRequest) error
	// Claim fails with promo.ErrAlreadyClaimed or promo.ErrExhausted.
	Claim(ctx context.Context, req ClaimRequest) (ClaimOutcome, error)
	ReleaseHold(ctx context.Context, code string, holdID uuid.UUID) (bool, error)
	Reset(ctx context.Context, req LedgerReset) error
	Redemptions(ctx context.Context, code string) ([]promo.Redemption, error)
}

type HoldTokens interface {
	GenerateHoldToken(code, email string, holdID uuid.UUID, issuedAt, expiresAt time.Time) (string, error)
	// ValidateHoldToken checks the signature and rejects expired tokens.
	ValidateHoldToken(token string) (*jwt.HoldClaims, error)
	// VerifyHoldSignature checks the signature only.
	VerifyHoldSignature(token string) (*jwt.HoldClaims, error)
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
}

type TaskQueue interface {
	EnqueuePurchaseConfirmation(ctx context.Context, msg PurchaseConfirmation) error
}
