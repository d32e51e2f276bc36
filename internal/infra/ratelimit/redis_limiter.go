// Package ratelimit implements per-client request budgets.
package ratelimit

import (
	"context"
	"time"

	"registrar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// fixedWindowScript counts hits in the current window and reports the
// remaining window time. The first hit starts the window.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

type redisFixedWindowLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisFixedWindowLimiter shares the budget across every API replica.
func NewRedisFixedWindowLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) service.RateLimiter {
	if prefix == "" {
		prefix = "rl"
	}

	return &redisFixedWindowLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

func (l *redisFixedWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l.client == nil {
		return false, 0, errors.New("redis client is nil")
	}
	if key == "" {
		key = "unknown"
	}

	values, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, errors.Wrap(err, "run rate limit script")
	}
	if len(values) != 2 {
		return false, 0, errors.Errorf("unexpected rate limit script response: %v", values)
	}

	count, ttlMS := values[0], values[1]
	if count <= l.limit {
		return true, 0, nil
	}

	return false, time.Duration(max(ttlMS, 1)) * time.Millisecond, nil
}
