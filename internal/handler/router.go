package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"plugin-storefront/internal/handler/api"
	"plugin-storefront/internal/handler/httperr"
	"plugin-storefront/internal/handler/middleware"
	"plugin-storefront/internal/infra/kv"
	"plugin-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	promo    *api.PromoHandler
	checkout *api.CheckoutHandler
	admin    *middleware.AdminMiddleware
	webhook  *middleware.WebhookMiddleware
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	client *redis.Client,
	promoHandler *api.PromoHandler,
	checkoutHandler *api.CheckoutHandler,
	adminMiddleware *middleware.AdminMiddleware,
	webhookMiddleware *middleware.WebhookMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, client, handlers{
		promo:    promoHandler,
		checkout: checkoutHandler,
		admin:    adminMiddleware,
		webhook:  webhookMiddleware,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, client *redis.Client, h handlers) {
	engine.GET("/health", healthCheck(client))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := h.admin.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/promo-status", Handler: h.promo.Status},
			{Method: http.MethodPost, Path: "/promo-validate", Handler: h.promo.Validate},
			{Method: http.MethodPost, Path: "/promo-reserve", Handler: h.promo.Reserve},
			{Method: http.MethodPost, Path: "/promo-release", Handler: h.promo.Cancel},
			{Method: http.MethodPost, Path: "/promo-record", Handler: h.promo.Record, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodPost, Path: "/promo-reset", Handler: h.promo.Reset, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodGet, Path: "/promo-redemptions", Handler: h.promo.Redemptions, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.checkout.Create},
		})

		webhooks := apiGroup.Group("/webhooks")
		webhooks.Use(h.webhook.VerifySignature())
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/payment", Handler: h.checkout.Webhook},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service and its redis connection are healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func healthCheck(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := kv.Ping(c.Request.Context(), client); err != nil {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
