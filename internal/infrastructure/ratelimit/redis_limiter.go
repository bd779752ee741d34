package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// RedisLoginLimiter counts login attempts per key in a fixed window.
// It fails open: if Redis is unreachable the attempt is allowed.
type RedisLoginLimiter struct {
	client *redis.Client
	logger *slog.Logger
	prefix string
	limit  int
	window time.Duration
}

// NewRedisLoginLimiter constructs a Redis backed login limiter. A
// non-positive limit disables limiting.
func NewRedisLoginLimiter(client *redis.Client, limit int, window time.Duration, logger *slog.Logger) *RedisLoginLimiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLoginLimiter{
		client: client,
		logger: logger,
		prefix: "login:attempts:",
		limit:  limit,
		window: window,
	}
}

// Allow implements domain.LoginRateLimiter
func (rl *RedisLoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if rl.limit <= 0 {
		return true, nil
	}

	redisKey := rl.prefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.logRedisError("incr", err)
		return true, nil
	}
	if counter == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.logRedisError("expire", err)
		}
	}
	return int(counter) <= rl.limit, nil
}

func (rl *RedisLoginLimiter) logRedisError(op string, err error) {
	if rl.logger == nil {
		return
	}
	rl.logger.Error("redis login limiter error", "op", op, "error", err)
}

var _ domain.LoginRateLimiter = (*RedisLoginLimiter)(nil)
