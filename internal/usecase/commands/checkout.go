package commands

import (
	"context"
	"log/slog"
	"time"

	"plugin-storefront/internal/domain/product"
	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct     = errs.New("unknown product")
	ErrPromoNotApplicable = errs.New("promo code does not apply to this product")
)

// Checkout session metadata keys, echoed back by the gateway on webhooks.
const (
	MetaProductID = "product_id"
	MetaEmail     = "email"
	MetaPromoCode = "promo_code"
	MetaHoldToken = "hold_token"
	MetaHoldID    = "hold_id"
)

type CheckoutInput struct {
	ProductID string
	Email     string
	PromoCode string
}

type CheckoutResult struct {
	SessionID     string
	URL           string
	Amount        decimal.Decimal
	Currency      string
	PromoCode     string
	HoldExpiresAt *time.Time
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	products *product.Catalog
	promos   *promo.Catalog
	promo    PromoCommands
	gateway  shared.PaymentGateway
	timeout  time.Duration
	logger   *slog.Logger
}

func NewCheckoutCommands(
	products *product.Catalog,
	promos *promo.Catalog,
	promoCommands PromoCommands,
	gateway shared.PaymentGateway,
	cfg config.Config,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		products: products,
		promos:   promos,
		promo:    promoCommands,
		gateway:  gateway,
		timeout:  cfg.Gateway.Timeout,
		logger:   logger,
	}
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	item, ok := c.products.Lookup(input.ProductID)
	if !ok {
		return nil, ErrUnknownProduct
	}
	email := promo.NormalizeEmail(input.Email)
	if err := promo.ValidateEmail(email); err != nil {
		return nil, err
	}

	amount := item.Price
	metadata := map[string]string{
		MetaProductID: item.ID,
		MetaEmail:     email,
	}

	var hold *ReserveResult
	if input.PromoCode != "" {
		def, ok := c.promos.Lookup(input.PromoCode)
		if !ok {
			return nil, promo.ErrUnknownCode
		}
		if def.LinkedProductID != item.ID {
			return nil, ErrPromoNotApplicable
		}

		discounted, err := item.DiscountedPrice(def.DiscountPercent)
		if err != nil {
			return nil, errs.Wrap(err, "failed to apply discount")
		}

		hold, err = c.promo.Reserve(ctx, def.Code, email)
		if err != nil {
			return nil, err
		}
		amount = discounted
		metadata[MetaPromoCode] = def.Code
		metadata[MetaHoldToken] = hold.Token
		metadata[MetaHoldID] = hold.HoldID.String()
	}

	gctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	session, err := c.gateway.CreateCheckoutSession(gctx, shared.CheckoutSessionRequest{
		ProductID:     item.ID,
		ProductName:   item.Name,
		Amount:        amount,
		Currency:      item.Currency,
		CustomerEmail: email,
		PromoCode:     metadata[MetaPromoCode],
		Metadata:      metadata,
	})
	if err != nil {
		if hold != nil {
			// payment never started; give the unit back
			if releaseErr := c.promo.ReleaseHold(context.WithoutCancel(ctx), hold.Code, hold.HoldID); releaseErr != nil {
				c.logger.Error("failed to release hold after gateway error",
					slog.String("code", hold.Code),
					slog.String("hold_id", hold.HoldID.String()),
					slog.String("error", releaseErr.Error()),
				)
			}
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to create checkout session"), errs.ErrUpstreamPayment)
	}

	c.logger.Info("checkout session created",
		slog.String("session_id", session.ID),
		slog.String("product_id", item.ID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("promo_code", metadata[MetaPromoCode]),
	)

	result := &CheckoutResult{
		SessionID: session.ID,
		URL:       session.URL,
		Amount:    amount,
		Currency:  item.Currency,
		PromoCode: metadata[MetaPromoCode],
	}
	if hold != nil {
		result.HoldExpiresAt = &hold.ExpiresAt
	}
	return result, nil
}
