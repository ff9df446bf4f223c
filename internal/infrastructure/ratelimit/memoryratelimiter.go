package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type memoryEntry struct {
	limiter  *rate.Limiter
	limit    Limit
	lastSeen time.Time
}

// MemoryRateLimiter is a per-process token bucket per key. It is used when
// Redis is not configured; counts are not shared between processes.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	idleTTL time.Duration
	now     func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string]*memoryEntry),
		idleTTL: 10 * time.Minute,
		now:     time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, limit Limit) (bool, error) {
	if limit.Disabled() {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entryKey := key + "|" + limit.Window.String()
	e, ok := l.entries[entryKey]
	if !ok || e.limit != limit {
		every := limit.Window / time.Duration(limit.Requests)
		e = &memoryEntry{
			limiter: rate.NewLimiter(rate.Every(every), limit.Requests),
			limit:   limit,
		}
		l.entries[entryKey] = e
	}
	e.lastSeen = now
	l.evictIdle(now)

	return e.limiter.AllowN(now, 1), nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prefix := key + "|"
	for k := range l.entries {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			delete(l.entries, k)
		}
	}
	return nil
}

// Len reports how many keys are tracked.
func (l *MemoryRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *MemoryRateLimiter) evictIdle(now time.Time) {
	for k, e := range l.entries {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.entries, k)
		}
	}
}
