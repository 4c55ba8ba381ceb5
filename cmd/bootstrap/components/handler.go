package components

import (
	"field-reservation/internal/handler"
	"field-reservation/internal/handler/api"
	"field-reservation/internal/handler/middleware"
	"field-reservation/internal/infra/gateway"
	"field-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) api.WebhookVerifier {
			return gateway.NewRazorpayVerifier(cfg.Payment.WebhookSecret)
		},
		api.NewFieldHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		func(f *api.FieldHandler, r *api.ReservationHandler, p *api.PaymentHandler) handler.Handlers {
			return handler.Handlers{Field: f, Reservation: r, Payment: p}
		},
		func(auth *middleware.AuthMiddleware, logger *middleware.Logger, rateLimit gin.HandlerFunc) handler.Middlewares {
			return handler.Middlewares{Auth: auth, Logger: logger, RateLimit: rateLimit}
		},
	),
	fx.Invoke(handler.NewRouter),
)
