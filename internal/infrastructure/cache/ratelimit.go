package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter is the subset of go-redis the limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetIn   time.Duration
}

// RateLimiter is a fixed-window counter keyed by client. The window starts on
// the first request and the key expires with it.
type RateLimiter struct {
	store  Counter
	max    int64
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRateLimiter(store Counter, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		max:    limit,
		window: window,
		prefix: "ratelimit:api:",
		now:    time.Now,
	}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     20,
		MinIdleConns: 2,
	})
}

// Allow counts one request for client in the current window.
func (l *RateLimiter) Allow(ctx context.Context, client string) (Decision, error) {
	windowStart := l.now().Truncate(l.window)
	key := fmt.Sprintf("%s%s:%d", l.prefix, client, windowStart.Unix())
	resetIn := windowStart.Add(l.window).Sub(l.now())

	n, err := l.store.Incr(ctx, key).Result()
	if err != nil {
		return Decision{Allowed: true, Limit: l.max, Remaining: l.max, ResetIn: resetIn}, fmt.Errorf("incr %s: %w", key, err)
	}
	if n == 1 {
		if err := l.store.Expire(ctx, key, l.window).Err(); err != nil {
			return Decision{Allowed: true, Limit: l.max, Remaining: l.max - 1, ResetIn: resetIn}, fmt.Errorf("expire %s: %w", key, err)
		}
	}

	remaining := l.max - n
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   n <= l.max,
		Limit:     l.max,
		Remaining: remaining,
		ResetIn:   resetIn,
	}, nil
}
