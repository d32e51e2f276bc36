package middleware

import (
	"log/slog"

	deliverycontext "registrar/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when present so a confirmation can
// be traced from the API through pub/sub into the mail worker.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, reqLogger := deliverycontext.WithRequestScope(
			c.Request().Context(),
			m.logger,
			c.Request().Header.Get(deliverycontext.HeaderXRequestID),
		)
		requestID := deliverycontext.GetRequestIDFromContext(ctx)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.Set(string(deliverycontext.KeyLogger), reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
