package metrics

import (
	"testing"

	"registrar/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationMetrics_Observe(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Namespace: "test"}}
	collectors, err := New(Params{Config: cfg})
	require.NoError(t, err)

	recorder := NewRegistrationMetrics(cfg, collectors)
	recorder.ObserveSubmission("OK")
	recorder.ObserveSubmission("OK")
	recorder.ObserveSubmission("DUPLICATE_REGISTRATION")
	recorder.ObserveConfirmation("INVALID_TOKEN")
	recorder.ObserveRejection("OK")
	recorder.ObserveExpired(3)
	recorder.ObserveDispatch("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(collectors.Submissions.WithLabelValues("OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.Submissions.WithLabelValues("DUPLICATE_REGISTRATION")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.Confirmations.WithLabelValues("INVALID_TOKEN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.Rejections.WithLabelValues("OK")))
	assert.Equal(t, 3.0, testutil.ToFloat64(collectors.Expired))
	assert.Equal(t, 1.0, testutil.ToFloat64(collectors.Dispatches.WithLabelValues("failed")))

	families, err := collectors.Registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "test_registration_submissions_total")
	assert.Contains(t, names, "go_goroutines")
}

func TestRegistrationMetrics_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{}
	collectors, err := New(Params{Config: cfg})
	require.NoError(t, err)

	recorder := NewRegistrationMetrics(cfg, collectors)
	assert.IsType(t, noopMetrics{}, recorder)

	recorder.ObserveSubmission("OK")
	assert.Equal(t, 0.0, testutil.ToFloat64(collectors.Submissions.WithLabelValues("OK")))
}
