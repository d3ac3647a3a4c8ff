package api

import (
	"errors"
	"net/http"

	"plugin-storefront/internal/domain/promo"
	resdto "plugin-storefront/internal/handler/dto/response"
	"plugin-storefront/internal/handler/httperr"
	"plugin-storefront/internal/pkg/errs"
	"plugin-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const retryAfterSeconds = "5"

// respondError maps usecase errors onto the public taxonomy.
func respondError(c *gin.Context, err error, msg string) {
	var rejection *promo.RejectionError
	if errors.As(err, &rejection) {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusConflict, resdto.FromRejection(rejection))
		return
	}

	switch {
	case errs.Is(err, promo.ErrAlreadyClaimed),
		errs.Is(err, promo.ErrExhausted),
		errs.Is(err, promo.ErrNotYetReleased):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, err.Error())
	case errs.Is(err, promo.ErrUnknownCode):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown promo code", nil)
	case errs.Is(err, commands.ErrUnknownProduct):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown product", nil)
	case errs.Is(err, promo.ErrInvalidEmail),
		errs.Is(err, promo.ErrInvalidResetCount),
		errs.Is(err, commands.ErrMissingOrderReference),
		errs.Is(err, commands.ErrPromoNotApplicable),
		errs.Is(err, errs.ErrInvalidHoldToken):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, err.Error())
	case errs.Is(err, errs.ErrStorageUnavailable):
		c.Header("Retry-After", retryAfterSeconds)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	case errs.Is(err, errs.ErrUpstreamPayment):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider error", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
