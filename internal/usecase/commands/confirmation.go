package commands

import (
	"context"
	"errors"
	"log/slog"

	"plugin-storefront/internal/domain/product"
	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/pkg/retry"
	"plugin-storefront/internal/usecase/shared"
)

const EventCheckoutCompleted = "checkout.completed"

// PaymentEvent is a verified webhook notification from the gateway.
type PaymentEvent struct {
	ID             string
	Type           string
	OrderReference string
	Email          string
	Metadata       map[string]string
}

type ConfirmResult struct {
	Ignored bool
	// Outcome is empty when the purchase carried no promo code.
	Outcome shared.ClaimOutcome
	// Oversubscribed marks a paid purchase whose promo could not be
	// recorded. It needs a manual refund.
	Oversubscribed bool
}

type PaymentCommands interface {
	ConfirmPayment(ctx context.Context, event PaymentEvent) (*ConfirmResult, error)
}

type paymentCommandsImpl struct {
	products *product.Catalog
	promo    PromoCommands
	tokens   shared.HoldTokens
	queue    shared.TaskQueue
	policy   retry.Policy
	logger   *slog.Logger
}

func NewPaymentCommands(
	products *product.Catalog,
	promoCommands PromoCommands,
	tokens shared.HoldTokens,
	queue shared.TaskQueue,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		products: products,
		promo:    promoCommands,
		tokens:   tokens,
		queue:    queue,
		policy:   retry.DefaultPolicy,
		logger:   logger,
	}
}

func (p *paymentCommandsImpl) ConfirmPayment(ctx context.Context, event PaymentEvent) (*ConfirmResult, error) {
	if event.Type != EventCheckoutCompleted {
		p.logger.Debug("ignoring payment event", slog.String("event_id", event.ID), slog.String("type", event.Type))
		return &ConfirmResult{Ignored: true}, nil
	}

	orderRef := event.OrderReference
	if orderRef == "" {
		orderRef = event.ID
	}
	if orderRef == "" {
		return nil, ErrMissingOrderReference
	}
	email := event.Email
	if email == "" {
		email = event.Metadata[MetaEmail]
	}
	email = promo.NormalizeEmail(email)
	if err := promo.ValidateEmail(email); err != nil {
		return nil, err
	}

	result := &ConfirmResult{}
	promoCode := event.Metadata[MetaPromoCode]
	if promoCode != "" {
		if err := p.verifyHold(event.Metadata[MetaHoldToken], promoCode, email); err != nil {
			return nil, err
		}

		var recorded *RecordResult
		err := retry.Do(ctx, p.policy, isStorageFailure, func(ctx context.Context) error {
			var err error
			recorded, err = p.promo.Record(ctx, RecordInput{
				Code:           promoCode,
				Email:          email,
				OrderReference: orderRef,
			})
			return err
		})
		switch {
		case err == nil:
			result.Outcome = recorded.Outcome
		case errors.Is(err, promo.ErrExhausted), errors.Is(err, promo.ErrAlreadyClaimed):
			// the customer paid; the webhook is acknowledged and support refunds
			result.Oversubscribed = true
			p.logger.Error("paid order could not claim promo, manual refund required",
				slog.String("order_reference", orderRef),
				slog.String("code", promoCode),
				slog.String("error", err.Error()),
			)
		default:
			return nil, err
		}
	}

	productID := event.Metadata[MetaProductID]
	productName := productID
	if item, ok := p.products.Lookup(productID); ok {
		productName = item.Name
	}

	err := p.queue.EnqueuePurchaseConfirmation(ctx, shared.PurchaseConfirmation{
		OrderReference: orderRef,
		Email:          email,
		ProductID:      productID,
		ProductName:    productName,
		PromoCode:      promo.NormalizeCode(promoCode),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to enqueue purchase confirmation")
	}

	p.logger.Info("payment confirmed",
		slog.String("order_reference", orderRef),
		slog.String("promo_code", promoCode),
		slog.String("outcome", string(result.Outcome)),
	)
	return result, nil
}

// verifyHold accepts expired tokens; a late payment still records.
func (p *paymentCommandsImpl) verifyHold(token, code, email string) error {
	if token == "" {
		return errs.Mark(errs.New("missing hold token"), errs.ErrInvalidHoldToken)
	}
	claims, err := p.tokens.VerifyHoldSignature(token)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidHoldToken)
	}
	if promo.NormalizeCode(claims.Code) != promo.NormalizeCode(code) || promo.NormalizeEmail(claims.Email) != email {
		return errs.Mark(errs.New("hold token does not match purchase"), errs.ErrInvalidHoldToken)
	}
	return nil
}

func isStorageFailure(err error) bool {
	return errs.Is(err, errs.ErrStorageUnavailable)
}
