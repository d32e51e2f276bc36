package impl

import (
	"context"
	"testing"

	"registrar/config"
	"registrar/internal/infra/auth"
	"registrar/internal/infra/crypto"
	"registrar/internal/infra/metrics"
	"registrar/internal/infra/persistence/memory"
	mockSvc "registrar/internal/mocks/service"
	"registrar/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegistrationService_RecordsOutcomeMetrics(t *testing.T) {
	cfg := newTestConfig(0, 0)
	cfg.Metrics = &config.MetricsConfig{Enabled: true}

	collectors, err := metrics.New(metrics.Params{Config: cfg})
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishConfirmationRequested(mock.Anything, mock.Anything).Return(nil)

	srv := NewRegistrationService(RegistrationServiceParams{
		Repo:      memory.NewRegistrationRepository(),
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Policy:    auth.NewPasswordPolicy(cfg),
		Secrets:   crypto.NewSecretGenerator(crypto.NewRandomSource()),
		Publisher: publisher,
		Metrics:   metrics.NewRegistrationMetrics(cfg, collectors),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	require.True(t, srv.Submit(ctx, aliceInput()).Success)
	require.False(t, srv.Submit(ctx, aliceInput()).Success)
	require.False(t, srv.Confirm(ctx, &usecase.ConfirmInput{Username: "alice", Token: "nope"}).Success)

	assert.InDelta(t, 1, testutil.ToFloat64(collectors.Submissions.WithLabelValues("OK")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collectors.Submissions.WithLabelValues("DUPLICATE_REGISTRATION")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collectors.Confirmations.WithLabelValues("INVALID_TOKEN")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collectors.Dispatches.WithLabelValues("published")), 0)
}
