package ratelimit

import (
	"log/slog"

	"registrar/config"
	"registrar/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LimiterParams holds dependencies for the RateLimiter, injected by Fx
type LimiterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  redis.UniversalClient `optional:"true"`
}

// NewRateLimiter returns nil when rate limiting is disabled.
func NewRateLimiter(params LimiterParams) service.RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.RequestsPerWindow <= 0 || cfg.Window <= 0 {
		params.Logger.Info("Rate limiting disabled")

		return nil
	}

	if params.Redis != nil {
		params.Logger.Info("Using Redis rate limiter",
			slog.Int("requests_per_window", cfg.RequestsPerWindow),
			slog.Duration("window", cfg.Window),
		)

		return NewRedisFixedWindowLimiter(params.Redis, params.Config.Env.ServiceName+":rl", cfg.RequestsPerWindow, cfg.Window)
	}

	params.Logger.Info("Using in-process rate limiter",
		slog.Int("requests_per_window", cfg.RequestsPerWindow),
		slog.Duration("window", cfg.Window),
		slog.Int("burst", cfg.Burst),
	)

	return NewMemoryLimiter(cfg.RequestsPerWindow, cfg.Window, cfg.Burst)
}
