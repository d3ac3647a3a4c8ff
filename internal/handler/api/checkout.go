package api

import (
	"encoding/json"
	"net/http"

	reqdto "plugin-storefront/internal/handler/dto/request"
	resdto "plugin-storefront/internal/handler/dto/response"
	"plugin-storefront/internal/handler/httperr"
	"plugin-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
	payments commands.PaymentCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands, payments commands.PaymentCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, payments: payments}
}

// @Summary Start checkout
// @Description Reserve the promo, if any, and open a payment gateway session
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} resdto.RejectionResponse
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.checkout.Checkout(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

// @Summary Payment webhook
// @Description Gateway notification; the signature is checked by middleware
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Signature header string true "HMAC-SHA256 of the raw body"
// @Param request body reqdto.PaymentWebhookRequest true "Gateway event"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /webhooks/payment [post]
func (h *CheckoutHandler) Webhook(c *gin.Context) {
	// gateway events grow new fields, so the strict JSON binder is bypassed
	var req reqdto.PaymentWebhookRequest
	raw, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.payments.ConfirmPayment(c.Request.Context(), req.ToEvent())
	if err != nil {
		respondError(c, err, "Payment confirmation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}
