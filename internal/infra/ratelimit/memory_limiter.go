package ratelimit

import (
	"context"
	"sync"
	"time"

	"registrar/internal/domain/service"

	"golang.org/x/time/rate"
)

const idleEviction = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryLimiter keeps one token bucket per key inside the process.
type memoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
	lastGC   time.Time
}

// NewMemoryLimiter refills limit tokens per window with the given burst.
func NewMemoryLimiter(limit int, window time.Duration, burst int) service.RateLimiter {
	if burst <= 0 {
		burst = max(limit, 1)
	}

	return &memoryLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(limit) / window.Seconds()),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.evictIdle(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	reservation := v.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, time.Second, nil
	}

	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return true, 0, nil
	}

	// Rejected calls must not consume future tokens.
	reservation.CancelAt(now)

	return false, delay, nil
}

func (l *memoryLimiter) evictIdle(now time.Time) {
	if now.Sub(l.lastGC) < idleEviction {
		return
	}
	l.lastGC = now

	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleEviction {
			delete(l.visitors, key)
		}
	}
}
