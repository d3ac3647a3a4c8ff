package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "plugin-storefront/internal/handler/dto/request"
	resdto "plugin-storefront/internal/handler/dto/response"
	"plugin-storefront/internal/handler/httperr"
	"plugin-storefront/internal/usecase/commands"
	"plugin-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingCode = errors.New("code query parameter is required")

type PromoHandler struct {
	cmds commands.PromoCommands
	q    queries.PromoQueries
}

func NewPromoHandler(cmds commands.PromoCommands, q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{cmds: cmds, q: q}
}

// @Summary Promo status
// @Description Claimed, held and remaining counts for a promo, plus timed-release fields
// @Tags promo
// @Produce json
// @Param code query string true "Promo code"
// @Success 200 {object} resdto.PromoStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /promo-status [get]
func (h *PromoHandler) Status(c *gin.Context) {
	code, ok := codeParam(c)
	if !ok {
		return
	}
	stats, err := h.q.GetStats(c.Request.Context(), code)
	if err != nil {
		respondError(c, err, "Failed to load promo status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(stats))
}

// @Summary Validate promo
// @Description Pure availability read; never takes a hold
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.PromoValidateRequest true "Validate request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /promo-validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.PromoValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	availability, err := h.q.IsAvailable(c.Request.Context(), req.Code, req.Email)
	if err != nil {
		respondError(c, err, "Validation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// @Summary Reserve promo
// @Description Place a time-limited hold on one unit before checkout
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.PromoReserveRequest true "Reserve request"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.RejectionResponse
// @Failure 503 {object} httperr.Response
// @Router /promo-reserve [post]
func (h *PromoHandler) Reserve(c *gin.Context) {
	var req reqdto.PromoReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Reserve(c.Request.Context(), req.Code, req.Email)
	if err != nil {
		respondError(c, err, "Reserve failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Release hold
// @Description Give back the unit held for a hold token
// @Tags promo
// @Accept json
// @Param request body reqdto.PromoCancelRequest true "Cancel request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /promo-release [post]
func (h *PromoHandler) Cancel(c *gin.Context) {
	var req reqdto.PromoCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.CancelHold(c.Request.Context(), req.Token); err != nil {
		respondError(c, err, "Release failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record redemption
// @Description Authoritative post-payment claim; replaying an order reference is a no-op
// @Tags promo
// @Accept json
// @Security AdminSecret
// @Param request body reqdto.PromoRecordRequest true "Record request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} resdto.RejectionResponse
// @Failure 503 {object} httperr.Response
// @Router /promo-record [post]
func (h *PromoHandler) Record(c *gin.Context) {
	var req reqdto.PromoRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Record(c.Request.Context(), req.ToInput()); err != nil {
		respondError(c, err, "Record failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reset promo
// @Description Reset the ledger of a promo and optionally its release schedule
// @Tags admin
// @Accept json
// @Security AdminSecret
// @Param code query string true "Promo code"
// @Param request body reqdto.PromoResetRequest false "Reset options"
// @Success 200 {object} resdto.PromoStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /promo-reset [post]
func (h *PromoHandler) Reset(c *gin.Context) {
	code, ok := codeParam(c)
	if !ok {
		return
	}
	var req reqdto.PromoResetRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	if err := h.cmds.Reset(c.Request.Context(), code, req.ToParams()); err != nil {
		respondError(c, err, "Reset failed")
		return
	}
	stats, err := h.q.PeekStats(c.Request.Context(), code)
	if err != nil {
		respondError(c, err, "Failed to load promo status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(stats))
}

// @Summary List redemptions
// @Description Audit log of recorded redemptions for a promo
// @Tags admin
// @Produce json
// @Security AdminSecret
// @Param code query string true "Promo code"
// @Success 200 {object} resdto.RedemptionListResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /promo-redemptions [get]
func (h *PromoHandler) Redemptions(c *gin.Context) {
	code, ok := codeParam(c)
	if !ok {
		return
	}
	items, err := h.q.Redemptions(c.Request.Context(), code)
	if err != nil {
		respondError(c, err, "Failed to load redemptions")
		return
	}
	res, err := resdto.FromRedemptions(code, items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to map redemptions", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func codeParam(c *gin.Context) (string, bool) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingCode, "Invalid request", "code is required")
		return "", false
	}
	return code, true
}
