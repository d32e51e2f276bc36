package ratelimit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"registrar/config"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisForTest(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return m, client
}

func TestRedisFixedWindowLimiter_AllowThenDeny(t *testing.T) {
	m, client := newRedisForTest(t)
	limiter := NewRedisFixedWindowLimiter(client, "rl_test", 2, time.Minute)
	ctx := context.Background()

	for range 2 {
		allowed, _, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)

	// Other keys have their own budget.
	allowed, _, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	// A new window starts once the key expires.
	m.FastForward(time.Minute + time.Second)
	allowed, _, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisFixedWindowLimiter_Errors(t *testing.T) {
	_, _, err := NewRedisFixedWindowLimiter(nil, "", 1, time.Second).Allow(context.Background(), "k")
	assert.Error(t, err)

	badClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 20 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = badClient.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err = NewRedisFixedWindowLimiter(badClient, "", 1, time.Second).Allow(ctx, "k")
	assert.Error(t, err)
}

func TestMemoryLimiter_BurstThenRefill(t *testing.T) {
	limiter := NewMemoryLimiter(60, time.Minute, 2).(*memoryLimiter)
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	ctx := context.Background()

	for range 2 {
		allowed, _, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Second, retryAfter)

	// The rejected call did not consume the next token.
	current = current.Add(time.Second)
	allowed, _, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute, 1).(*memoryLimiter)
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	_, _, _ = limiter.Allow(context.Background(), "a")
	current = current.Add(2 * idleEviction)
	_, _, _ = limiter.Allow(context.Background(), "b")

	assert.NotContains(t, limiter.visitors, "a")
	assert.Contains(t, limiter.visitors, "b")
}

func TestNewRateLimiter(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	_, client := newRedisForTest(t)

	disabled := NewRateLimiter(LimiterParams{Config: &config.Config{}, Logger: logger})
	assert.Nil(t, disabled)

	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, RequestsPerWindow: 5, Window: time.Minute}}

	assert.IsType(t, &memoryLimiter{}, NewRateLimiter(LimiterParams{Config: cfg, Logger: logger}))
	assert.IsType(t, &redisFixedWindowLimiter{}, NewRateLimiter(LimiterParams{Config: cfg, Logger: logger, Redis: client}))
}
