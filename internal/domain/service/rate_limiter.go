package service

import (
	"context"
	"time"
)

// RateLimiter decides whether a keyed caller may proceed.
type RateLimiter interface {
	// Allow consumes one unit for key and reports whether it was within budget.
	// retryAfter is a hint for rejected calls.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
