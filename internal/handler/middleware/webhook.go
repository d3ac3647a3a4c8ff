package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"plugin-storefront/internal/handler/httperr"
	"plugin-storefront/internal/infra/gateway"
	"plugin-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

var errInvalidSignature = errors.New("invalid webhook signature")

type WebhookMiddleware struct {
	secret string
}

func NewWebhookMiddleware(cfg config.Config) *WebhookMiddleware {
	return &WebhookMiddleware{secret: cfg.Gateway.WebhookSecret}
}

// VerifySignature checks the gateway HMAC over the raw body and restores
// the body for binding.
func (m *WebhookMiddleware) VerifySignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read body", nil)
			return
		}
		_ = c.Request.Body.Close()

		if !gateway.VerifySignature(m.secret, payload, c.GetHeader(gateway.SignatureHeader)) {
			slog.Warn("Webhook signature rejected", "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidSignature, "Invalid signature", nil)
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(payload))
		c.Next()
	}
}
