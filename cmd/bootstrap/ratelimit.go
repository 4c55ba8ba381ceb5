package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"field-reservation/internal/handler/middleware"
	"field-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimitStore,
		NewRateLimitMiddleware,
	),
)

// NewRateLimitStore shares counters through Redis when REDIS_URL is set and
// keeps them in process otherwise.
func NewRateLimitStore(lc fx.Lifecycle, cfg config.Config) (limiter.Store, error) {
	opts := limiter.StoreOptions{
		Prefix:          cfg.RateLimit.Prefix,
		CleanUpInterval: time.Minute,
		MaxRetry:        3,
	}
	if cfg.Redis.URL == "" {
		return memory.NewStoreWithOptions(opts), nil
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	slog.Info("rate limiter using redis store", "addr", redisOpts.Addr)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return redisstore.NewStoreWithOptions(client, opts)
}

func NewRateLimitMiddleware(cfg config.Config, store limiter.Store) (gin.HandlerFunc, error) {
	return middleware.NewRateLimitMiddleware(cfg.RateLimit, store)
}
