// Package metrics exposes Prometheus collectors for the registration service.
package metrics

import (
	"registrar/config"
	"registrar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const defaultNamespace = "registrar"

// Collectors groups every registered collector.
type Collectors struct {
	Registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	Submissions   *prometheus.CounterVec
	Confirmations *prometheus.CounterVec
	Rejections    *prometheus.CounterVec
	Expired       prometheus.Counter
	Dispatches    *prometheus.CounterVec
}

// Params holds dependencies for the collectors, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// New registers the collectors on a dedicated registry together with the Go
// runtime and process collectors.
func New(params Params) (*Collectors, error) {
	namespace := defaultNamespace
	if params.Config.Metrics != nil && params.Config.Metrics.Namespace != "" {
		namespace = params.Config.Metrics.Namespace
	}

	c := &Collectors{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests partitioned by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Histogram of HTTP request latencies in seconds partitioned by method, route, and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registration",
			Name:      "submissions_total",
			Help:      "Registration submissions partitioned by outcome code.",
		}, []string{"outcome"}),
		Confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registration",
			Name:      "confirmations_total",
			Help:      "Confirmation attempts partitioned by outcome code.",
		}, []string{"outcome"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registration",
			Name:      "rejections_total",
			Help:      "Administrative rejections partitioned by outcome code.",
		}, []string{"outcome"}),
		Expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registration",
			Name:      "expired_total",
			Help:      "Pending requests rejected after their confirmation deadline.",
		}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registration",
			Name:      "dispatches_total",
			Help:      "Confirmation dispatch attempts partitioned by outcome.",
		}, []string{"outcome"}),
	}

	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.HTTPInFlight,
		c.Submissions,
		c.Confirmations,
		c.Rejections,
		c.Expired,
		c.Dispatches,
	} {
		if err := c.Registry.Register(collector); err != nil {
			return nil, errors.Wrap(err, "register collector")
		}
	}

	return c, nil
}

// NewRegistrationMetrics adapts the collectors to the domain interface.
// Disabled metrics yield a no-op recorder.
func NewRegistrationMetrics(cfg *config.Config, c *Collectors) service.RegistrationMetrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return Noop()
	}

	return &registrationMetrics{c: c}
}

type registrationMetrics struct {
	c *Collectors
}

func (m *registrationMetrics) ObserveSubmission(outcome string) {
	m.c.Submissions.WithLabelValues(outcome).Inc()
}

func (m *registrationMetrics) ObserveConfirmation(outcome string) {
	m.c.Confirmations.WithLabelValues(outcome).Inc()
}

func (m *registrationMetrics) ObserveRejection(outcome string) {
	m.c.Rejections.WithLabelValues(outcome).Inc()
}

func (m *registrationMetrics) ObserveExpired(count int64) {
	m.c.Expired.Add(float64(count))
}

func (m *registrationMetrics) ObserveDispatch(outcome string) {
	m.c.Dispatches.WithLabelValues(outcome).Inc()
}

type noopMetrics struct{}

// Noop returns a recorder that drops every observation.
func Noop() service.RegistrationMetrics {
	return noopMetrics{}
}

func (noopMetrics) ObserveSubmission(string)   {}
func (noopMetrics) ObserveConfirmation(string) {}
func (noopMetrics) ObserveRejection(string)    {}
func (noopMetrics) ObserveExpired(int64)       {}
func (noopMetrics) ObserveDispatch(string)     {}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New, NewRegistrationMetrics),
)
