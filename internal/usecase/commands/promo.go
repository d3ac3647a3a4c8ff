package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/pkg/clock"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/pkg/ptr"
	"plugin-storefront/internal/usecase/queries"
	"plugin-storefront/internal/usecase/release"
	"plugin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingOrderReference = errs.New("order reference is required")
	ErrHoldTokenGeneration   = errs.New("hold token generation failed")
)

type ReserveResult struct {
	HoldID    uuid.UUID
	Code      string
	Email     string
	ExpiresAt time.Time
	Token     string
}

type RecordInput struct {
	Code           string
	Email          string
	OrderReference string
}

type RecordResult struct {
	Code    string
	Outcome shared.ClaimOutcome
}

type ResetParams struct {
	Count         *int
	ClearEmails   bool
	ResetSchedule bool
}

type PromoCommands interface {
	// Reserve places a time-limited hold on one unit for email.
	Reserve(ctx context.Context, code, email string) (*ReserveResult, error)
	// Record is the authoritative post-payment claim. Replaying an order
	// reference is a no-op.
	Record(ctx context.Context, input RecordInput) (*RecordResult, error)
	ReleaseHold(ctx context.Context, code string, holdID uuid.UUID) error
	// CancelHold releases the hold a still-valid token was issued for.
	CancelHold(ctx context.Context, token string) error
	Reset(ctx context.Context, code string, params ResetParams) error
}

type promoCommandsImpl struct {
	catalog   *promo.Catalog
	queries   queries.PromoQueries
	scheduler release.Scheduler
	ledger    shared.LedgerStore
	tokens    shared.HoldTokens
	clock     clock.Clock
	holdTTL   time.Duration
	logger    *slog.Logger
}

func NewPromoCommands(
	catalog *promo.Catalog,
	promoQueries queries.PromoQueries,
	scheduler release.Scheduler,
	ledger shared.LedgerStore,
	tokens shared.HoldTokens,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) PromoCommands {
	return &promoCommandsImpl{
		catalog:   catalog,
		queries:   promoQueries,
		scheduler: scheduler,
		ledger:    ledger,
		tokens:    tokens,
		clock:     clk,
		holdTTL:   cfg.Hold.TTL,
		logger:    logger,
	}
}

func (p *promoCommandsImpl) Reserve(ctx context.Context, code, email string) (*ReserveResult, error) {
	def, ok := p.catalog.Lookup(code)
	if !ok {
		return nil, promo.ErrUnknownCode
	}
	email = promo.NormalizeEmail(email)
	if err := promo.ValidateEmail(email); err != nil {
		return nil, err
	}

	// pre-check gives the caller the detailed rejection (countdown hint)
	availability, err := p.queries.IsAvailable(ctx, def.Code, email)
	if err != nil {
		return nil, err
	}
	if err := availability.Err(); err != nil {
		return nil, err
	}

	now := p.clock.Now()
	releasedCap := def.MaxUses
	var sched *promo.Schedule
	if def.IsTimed() {
		sched, err = p.scheduler.EnsureSchedule(ctx, def)
		if err != nil {
			return nil, err
		}
		now = sched.ObservedAt(now)
		releasedCap = sched.ReleasedCount(now)
	}

	req := shared.HoldRequest{
		Code:        def.Code,
		Email:       email,
		HoldID:      uuid.New(),
		Now:         now,
		ExpiresAt:   now.Add(p.holdTTL),
		MaxUses:     def.MaxUses,
		ReleasedCap: releasedCap,
	}
	if err := p.ledger.PlaceHold(ctx, req); err != nil {
		if reason, ok := rejectionReason(err); ok {
			var next *time.Time
			if reason == promo.ReasonNotYetReleased && sched != nil {
				if t, found := sched.NextRelease(now); found {
					next = &t
				}
			}
			return nil, promo.NewRejection(reason, next)
		}
		return nil, errs.Wrap(err, "failed to place hold")
	}

	token, err := p.tokens.GenerateHoldToken(def.Code, email, req.HoldID, now, req.ExpiresAt)
	if err != nil {
		p.compensate(ctx, def.Code, req.HoldID)
		return nil, errs.Mark(err, ErrHoldTokenGeneration)
	}

	p.logger.Info("promo hold placed",
		slog.String("code", def.Code),
		slog.String("hold_id", req.HoldID.String()),
		slog.Time("expires_at", req.ExpiresAt),
	)

	return &ReserveResult{
		HoldID:    req.HoldID,
		Code:      def.Code,
		Email:     email,
		ExpiresAt: req.ExpiresAt,
		Token:     token,
	}, nil
}

func (p *promoCommandsImpl) Record(ctx context.Context, input RecordInput) (*RecordResult, error) {
	// inactive codes still record: the payment already happened
	def, ok := p.catalog.Definition(input.Code)
	if !ok {
		return nil, promo.ErrUnknownCode
	}
	email := promo.NormalizeEmail(input.Email)
	if err := promo.ValidateEmail(email); err != nil {
		return nil, err
	}
	if input.OrderReference == "" {
		return nil, ErrMissingOrderReference
	}

	outcome, err := p.ledger.Claim(ctx, shared.ClaimRequest{
		Code:           def.Code,
		Email:          email,
		OrderReference: input.OrderReference,
		Now:            p.clock.Now(),
		MaxUses:        def.MaxUses,
	})
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			return nil, promo.NewRejection(reason, nil)
		}
		return nil, errs.Wrap(err, "failed to record redemption")
	}

	p.logger.Info("promo redemption recorded",
		slog.String("code", def.Code),
		slog.String("order_reference", input.OrderReference),
		slog.String("outcome", string(outcome)),
	)
	return &RecordResult{Code: def.Code, Outcome: outcome}, nil
}

func (p *promoCommandsImpl) ReleaseHold(ctx context.Context, code string, holdID uuid.UUID) error {
	def, ok := p.catalog.Definition(code)
	if !ok {
		return promo.ErrUnknownCode
	}
	released, err := p.ledger.ReleaseHold(ctx, def.Code, holdID)
	if err != nil {
		return errs.Wrap(err, "failed to release hold")
	}
	p.logger.Info("promo hold released",
		slog.String("code", def.Code),
		slog.String("hold_id", holdID.String()),
		slog.Bool("was_live", released),
	)
	return nil
}

func (p *promoCommandsImpl) CancelHold(ctx context.Context, token string) error {
	claims, err := p.tokens.ValidateHoldToken(token)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidHoldToken)
	}
	return p.ReleaseHold(ctx, claims.Code, claims.HoldID)
}

func (p *promoCommandsImpl) Reset(ctx context.Context, code string, params ResetParams) error {
	def, ok := p.catalog.Definition(code)
	if !ok {
		return promo.ErrUnknownCode
	}
	count := ptr.Deref(params.Count, 0)
	if count < 0 || count > def.MaxUses {
		return promo.ErrInvalidResetCount
	}

	err := p.ledger.Reset(ctx, shared.LedgerReset{
		Code:        def.Code,
		Count:       count,
		ClearEmails: params.ClearEmails,
	})
	if err != nil {
		return errs.Wrap(err, "failed to reset ledger")
	}

	if params.ResetSchedule && def.IsTimed() {
		if err := p.scheduler.Reset(ctx, def.Code); err != nil {
			return err
		}
	}

	p.logger.Warn("promo reset by admin",
		slog.String("code", def.Code),
		slog.Int("count", count),
		slog.Bool("clear_emails", params.ClearEmails),
		slog.Bool("reset_schedule", params.ResetSchedule),
	)
	return nil
}

func (p *promoCommandsImpl) compensate(ctx context.Context, code string, holdID uuid.UUID) {
	if err := p.ReleaseHold(context.WithoutCancel(ctx), code, holdID); err != nil {
		p.logger.Error("failed to release hold",
			slog.String("code", code),
			slog.String("hold_id", holdID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func rejectionReason(err error) (promo.Reason, bool) {
	switch {
	case errors.Is(err, promo.ErrAlreadyClaimed):
		return promo.ReasonAlreadyClaimed, true
	case errors.Is(err, promo.ErrExhausted):
		return promo.ReasonExhausted, true
	case errors.Is(err, promo.ErrNotYetReleased):
		return promo.ReasonNotYetReleased, true
	default:
		return promo.ReasonNone, false
	}
}
