package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/pixelift/pixelift-api/internal/logger"
)

// RateLimitRepository keeps fixed-window request counters in Redis
type RateLimitRepository struct {
	client *redis.Client
}

func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Increment counts one request for (class, identifier) in the current window and
// returns the count so far and the time left before the window resets.
// The window starts with the first request seen for the key.
func (r *RateLimitRepository) Increment(ctx context.Context, class, identifier string, window time.Duration) (int64, time.Duration, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", class, identifier)

	var incr *redis.IntCmd
	var pttl *redis.DurationCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", 0,
			"error", err,
		)
		return 0, 0, err
	}

	count := incr.Val()
	ttl := pttl.Val()
	if ttl <= 0 {
		// Fresh key, or one that lost its expiry.
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}

	logger.Log.Debugw(
		"key", key,
		"result", count,
		"ttl", ttl,
	)

	return count, ttl, nil
}
