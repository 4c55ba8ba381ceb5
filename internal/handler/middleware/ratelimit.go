package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"field-reservation/internal/handler/httperr"
	"field-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

var errRateLimited = errors.New("rate limit exceeded")

// NewRateLimitMiddleware limits requests per authenticated user, falling back to
// the client IP for anonymous callers. A nil store or a disabled config yields
// a pass-through handler.
func NewRateLimitMiddleware(cfg config.RateLimitConfig, store limiter.Store) (gin.HandlerFunc, error) {
	if !cfg.Enabled || store == nil {
		return func(c *gin.Context) { c.Next() }, nil
	}

	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, err
	}

	instance := limiter.New(store, rate)
	slog.Info("rate limiter initialized", "rate", cfg.Rate)

	return ginmiddleware.NewMiddleware(instance,
		ginmiddleware.WithKeyGetter(rateLimitKey),
		ginmiddleware.WithLimitReachedHandler(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests")
		}),
		ginmiddleware.WithErrorHandler(func(c *gin.Context, err error) {
			// Fail open: the limiter store being down must not take the API with it.
			slog.Warn("rate limiter store error", "error", err)
			c.Next()
		}),
	), nil
}

func rateLimitKey(c *gin.Context) string {
	if id, ok := GetUserID(c); ok {
		return "user:" + id.String()
	}
	return "ip:" + c.ClientIP()
}
