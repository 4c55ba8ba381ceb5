package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"field-reservation/internal/domain/user"
	"field-reservation/internal/handler/api"
	"field-reservation/internal/handler/middleware"
	"field-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Field       *api.FieldHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Logger    *middleware.Logger
	RateLimit gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, cfg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		adminOnly := []gin.HandlerFunc{mw.Auth.RequireAuth(), mw.Auth.RequireRole(user.RoleAdmin)}

		fields := apiGroup.Group("/fields")
		fields.Use(mw.RateLimit)
		addRoutes(fields, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Field.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Field.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Field.Availability},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Field.Quote},
			{Method: http.MethodPost, Path: "", Handler: h.Field.Create, Mw: adminOnly},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Field.Update, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Field.Delete, Mw: adminOnly},
		})

		// Rate limiting runs after auth so callers are keyed by user id.
		reservations := apiGroup.Group("/reservations")
		reservations.Use(mw.Auth.RequireAuth(), mw.RateLimit)
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Reservation.Complete,
				Mw: []gin.HandlerFunc{mw.Auth.RequireRole(user.RoleAdmin)}},
			{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Payment.ListByReservation},
		})

		payments := apiGroup.Group("/payments")
		addRoutes(payments.Group("", mw.Auth.RequireAuth(), mw.RateLimit), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Payment.RecordOutcome},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.Get},
		})
		if cfg.Payment.WebhookSecret != "" {
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/webhook", Handler: h.Payment.Webhook},
			})
		}
	}
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
