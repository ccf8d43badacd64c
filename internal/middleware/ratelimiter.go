package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/handler"
)

// RateLimiter limits how often a single client may hit the auth endpoints.
type RateLimiter interface {
	// Allow reports whether the client identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)

	// Close closes the underlying connection, if any.
	Close() error
}

type redisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

// NewRateLimiter creates a Redis-backed fixed-window rate limiter.
func NewRateLimiter(client *redis.Client, cfg *config.Config, logger *slog.Logger) RateLimiter {
	return &redisRateLimiter{
		client: client,
		limit:  cfg.AuthRateLimit,
		window: time.Duration(cfg.AuthRateWindow) * time.Second,
		logger: logger,
	}
}

func (r *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	// Limit of zero or below means unlimited
	if r.limit <= 0 {
		return true, nil
	}

	redisKey := fmt.Sprintf("rate:auth:%s", key)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	// Refreshing the expiry on every hit keeps the window simple; a client that
	// keeps hammering stays limited.
	pipe.Expire(ctx, redisKey, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to increment counter", "error", err, "key", key)
		// On error, allow the request but log it
		return true, err
	}

	return incr.Val() <= r.limit, nil
}

func (r *redisRateLimiter) Close() error {
	return r.client.Close()
}

// NoOpRateLimiter is a rate limiter that always allows requests
// Used when Redis is not available
type NoOpRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpRateLimiter creates a no-op rate limiter
func NewNoOpRateLimiter(logger *slog.Logger) RateLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op rate limiter - rate limiting is disabled")
	return &NoOpRateLimiter{logger: logger}
}

func (r *NoOpRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func (r *NoOpRateLimiter) Close() error {
	return nil
}

// RateLimit guards a route group with the limiter, keyed by client IP.
func RateLimit(limiter RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("⚠️ [RateLimiter] Limiter unavailable, letting request through", "error", err)
		}
		if !allowed {
			logger.Warn("⚠️ [RateLimiter] Too many requests", "ip", c.ClientIP())
			handler.RespondError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
