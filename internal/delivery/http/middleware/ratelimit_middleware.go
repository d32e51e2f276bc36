package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "registrar/internal/delivery/context"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RateLimitMiddleware throttles callers per client IP and route.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// RateLimitParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitParams struct {
	fx.In

	Limiter service.RateLimiter `optional:"true"`
	Logger  *slog.Logger
}

// NewRateLimitMiddleware accepts a nil limiter, in which case Limit passes every request through.
func NewRateLimitMiddleware(params RateLimitParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
}

// Limit fails open when the limiter backend is unavailable.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.limiter == nil {
			return next(c)
		}

		ctx := c.Request().Context()
		key := c.Path() + "|" + c.RealIP()

		allowed, retryAfter, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
