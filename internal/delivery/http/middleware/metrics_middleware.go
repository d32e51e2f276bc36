package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	collectors *metrics.Collectors
}

func NewMetricsMiddleware(collectors *metrics.Collectors) *MetricsMiddleware {
	return &MetricsMiddleware{collectors: collectors}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.collectors.HTTPInFlight.Inc()
		defer m.collectors.HTTPInFlight.Dec()

		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(statusOf(c, err))
		m.collectors.HTTPRequests.WithLabelValues(c.Request().Method, route, status).Inc()
		m.collectors.HTTPDuration.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())

		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
