package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minWindow = time.Second

// RateLimiter counts requests per client in fixed windows backed by Redis.
// Key format: ratelimit:<scope>:<client>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	scope  string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter allows limit requests per client in every window. Windows
// shorter than a second are rounded up to one second.
func NewRateLimiter(client *redis.Client, scope string, limit int, window time.Duration) *RateLimiter {
	if window < minWindow {
		window = minWindow
	}
	return &RateLimiter{
		client: client,
		scope:  scope,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Allow records one request for clientKey and reports whether it is within
// the limit for the current window.
func (l *RateLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := l.key(clientKey, l.now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", l.scope, err)
	}

	return incr.Val() <= l.limit, nil
}

func (l *RateLimiter) key(clientKey string, t time.Time) string {
	start := t.Truncate(l.window).Unix()
	return fmt.Sprintf("ratelimit:%s:%s:%d", l.scope, clientKey, start)
}
