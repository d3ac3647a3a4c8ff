package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"plugin-storefront/internal/handler/httperr"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/secret"

	"github.com/gin-gonic/gin"
)

const AdminSecretHeader = "X-Admin-Secret"

var errAdminSecretRequired = errors.New("admin secret required")

type AdminMiddleware struct {
	secretHash string
}

func NewAdminMiddleware(cfg config.Config) *AdminMiddleware {
	return &AdminMiddleware{secretHash: cfg.Admin.SecretHash}
}

// RequireAdmin gates internal and admin routes behind the shared secret.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminSecretHeader)
		if provided == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminSecretRequired, "Admin secret required", nil)
			return
		}

		if err := secret.Compare(m.secretHash, provided); err != nil {
			slog.Warn("Admin secret rejected", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid admin secret", nil)
			return
		}

		c.Next()
	}
}
