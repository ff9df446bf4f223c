package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func exhaust(t *testing.T, l RateLimiter, key string, limit Limit) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < limit.Requests; i++ {
		allowed, err := l.Allow(ctx, key, limit)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, err := l.Allow(ctx, key, limit)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit should be denied")
}

func TestMemoryRateLimiter_Allow(t *testing.T) {
	l := NewMemoryRateLimiter()
	exhaust(t, l, "10.0.0.1", PerMinute(5))

	allowed, err := l.Allow(context.Background(), "10.0.0.2", PerMinute(5))
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are counted separately")
}

func TestMemoryRateLimiter_Refills(t *testing.T) {
	l := NewMemoryRateLimiter()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	exhaust(t, l, "k", PerMinute(2))

	now = now.Add(31 * time.Second)
	allowed, err := l.Allow(context.Background(), "k", PerMinute(2))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_EvictsIdleKeys(t *testing.T) {
	l := NewMemoryRateLimiter()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a", PerMinute(1))
	now = now.Add(11 * time.Minute)
	_, _ = l.Allow(context.Background(), "b", PerMinute(1))

	assert.Equal(t, 1, l.Len())
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	l := NewMemoryRateLimiter()
	exhaust(t, l, "k", PerMinute(1))
	require.NoError(t, l.Reset(context.Background(), "k"))

	allowed, err := l.Allow(context.Background(), "k", PerMinute(1))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLimit_Disabled(t *testing.T) {
	l := NewMemoryRateLimiter()
	for i := 0; i < 50; i++ {
		allowed, err := l.Allow(context.Background(), "k", PerMinute(0))
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	assert.Zero(t, l.Len())
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	l := NewRedisRateLimiter(client)

	exhaust(t, l, "test-key-minute", PerMinute(5))
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	l := NewRedisRateLimiter(client)
	ctx := context.Background()

	exhaust(t, l, "test-key-reset", PerMinute(2))
	require.NoError(t, l.Reset(ctx, "test-key-reset"))

	allowed, err := l.Allow(ctx, "test-key-reset", PerMinute(2))
	require.NoError(t, err)
	assert.True(t, allowed)
}
