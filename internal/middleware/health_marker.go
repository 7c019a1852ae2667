package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	requestCountKey = "health:request_count"
	lastRequestKey  = "health:last_request_at"
)

// HealthMarker counts requests in Redis so the health endpoint can report
// traffic since startup. Failures are ignored; this must never block a request.
func HealthMarker(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb != nil {
			ctx := context.Background()
			_ = rdb.Incr(ctx, requestCountKey).Err()
			_ = rdb.Set(ctx, lastRequestKey, time.Now().Format(time.RFC3339), 0).Err()
		}
		return c.Next()
	}
}

// HealthCounters reads the request marker back (for the health endpoint).
func HealthCounters(ctx context.Context, rdb *redis.Client) (int64, string) {
	if rdb == nil {
		return 0, ""
	}
	count, _ := rdb.Get(ctx, requestCountKey).Int64()
	last, _ := rdb.Get(ctx, lastRequestKey).Result()
	return count, last
}

// ResetHealthCounters clears the request marker (admin-gated endpoint).
func ResetHealthCounters(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, requestCountKey, lastRequestKey).Err()
}
