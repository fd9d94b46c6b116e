package services

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=services

import (
	"context"
	"time"

	"github.com/go-chi/httprate"
)

// Rate limit classes
const (
	ClassImageProcessing = "image-processing"
	ClassAPI             = "api"
)

// Decision is the outcome of a rate limit check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

func decide(limit int, count int64, resetAt time.Time) Decision {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

// limitFor returns the budget of class, using the api budget for unknown classes.
func limitFor(limits map[string]int, class string) int {
	if l, ok := limits[class]; ok {
		return l
	}
	return limits[ClassAPI]
}

// MemoryRateLimiter is a fixed-window limiter local to this process.
// Counters live in an httprate local counter, which drops windows older
// than the previous one as new windows start.
type MemoryRateLimiter struct {
	counter httprate.LimitCounter
	limits  map[string]int
	window  time.Duration
	now     func() time.Time
}

// NewMemoryRateLimiter creates a limiter allowing limits[class] requests per window.
func NewMemoryRateLimiter(limits map[string]int, window time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		counter: httprate.NewLocalLimitCounter(window),
		limits:  limits,
		window:  window,
		now:     time.Now,
	}
}

// Allow counts one request for identifier in class.
func (l *MemoryRateLimiter) Allow(ctx context.Context, identifier, class string) (Decision, error) {
	limit := limitFor(l.limits, class)
	key := class + ":" + identifier
	current := l.now().UTC().Truncate(l.window)
	resetAt := current.Add(l.window)

	if err := l.counter.Increment(key, current); err != nil {
		return Decision{Allowed: true, Limit: limit, Remaining: limit, ResetAt: resetAt}, err
	}
	count, _, err := l.counter.Get(key, current, current.Add(-l.window))
	if err != nil {
		return Decision{Allowed: true, Limit: limit, Remaining: limit, ResetAt: resetAt}, err
	}

	return decide(limit, int64(count), resetAt), nil
}

// RateLimitCounter is a shared fixed-window counter.
type RateLimitCounter interface {
	Increment(ctx context.Context, class, identifier string, window time.Duration) (int64, time.Duration, error)
}

// RedisRateLimiter shares windows between instances through a counter store.
type RedisRateLimiter struct {
	counter RateLimitCounter
	limits  map[string]int
	window  time.Duration
	now     func() time.Time
}

func NewRedisRateLimiter(counter RateLimitCounter, limits map[string]int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		counter: counter,
		limits:  limits,
		window:  window,
		now:     time.Now,
	}
}

// Allow counts one request for identifier in class. Errors come back with an
// allowing decision so callers can fail open.
func (l *RedisRateLimiter) Allow(ctx context.Context, identifier, class string) (Decision, error) {
	limit := limitFor(l.limits, class)

	count, ttl, err := l.counter.Increment(ctx, class, identifier, l.window)
	if err != nil {
		return Decision{Allowed: true, Limit: limit, Remaining: limit, ResetAt: l.now().Add(l.window)}, err
	}

	return decide(limit, count, l.now().Add(ttl)), nil
}
