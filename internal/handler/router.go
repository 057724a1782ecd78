package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"
	"staybook/internal/metrics"
	"staybook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Payout       *api.PayoutHandler
	Webhook      *api.WebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ownerOnly := authMiddleware.RequireRole(user.RoleOwner, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		// signed by the processor, no bearer token
		registerWebhookRoutes(apiGroup, h.Webhook)

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		bookings := authed.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Booking.Approve, Mw: []gin.HandlerFunc{ownerOnly}},
			{Method: http.MethodPost, Path: "/:id/decline", Handler: h.Booking.Decline, Mw: []gin.HandlerFunc{ownerOnly}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Booking.Checkout},
		})

		owner := authed.Group("/owner")
		owner.Use(ownerOnly)
		addRoutes(owner, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListOwned},
		})

		properties := authed.Group("/properties/:id/availability")
		addRoutes(properties, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Availability.Calendar},
			{Method: http.MethodGet, Path: "/check", Handler: h.Availability.Check},
			{Method: http.MethodPut, Path: "", Handler: h.Availability.SetRange, Mw: []gin.HandlerFunc{ownerOnly}},
			{Method: http.MethodPut, Path: "/:date", Handler: h.Availability.SetDay, Mw: []gin.HandlerFunc{ownerOnly}},
		})

		payouts := authed.Group("/payouts/account")
		payouts.Use(ownerOnly)
		addRoutes(payouts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Payout.EnsureAccount},
			{Method: http.MethodGet, Path: "", Handler: h.Payout.Status},
			{Method: http.MethodPost, Path: "/onboarding-link", Handler: h.Payout.OnboardingLink},
		})
	}
}

// nonPostMethods is every method gin.Any routes except POST.
var nonPostMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

func registerWebhookRoutes(g *gin.RouterGroup, h *api.WebhookHandler) {
	webhooks := g.Group("/webhooks")
	addRoutes(webhooks, []route{
		{Method: http.MethodPost, Path: "/payments", Handler: h.Receive},
	})
	webhooks.Match(nonPostMethods, "/payments", h.MethodNotAllowed)
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
