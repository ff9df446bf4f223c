// Package ratelimit counts requests per client key over a sliding window.
package ratelimit

import (
	"context"
	"time"
)

// Limit allows Requests hits per Window for a single key.
type Limit struct {
	Requests int
	Window   time.Duration
}

// PerMinute is shorthand for a one-minute window.
func PerMinute(n int) Limit {
	return Limit{Requests: n, Window: time.Minute}
}

// Disabled reports whether the limit lets everything through.
func (l Limit) Disabled() bool {
	return l.Requests <= 0 || l.Window <= 0
}

type RateLimiter interface {
	// Allow records one hit for key and reports whether it fits the limit.
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
	Reset(ctx context.Context, key string) error
}
