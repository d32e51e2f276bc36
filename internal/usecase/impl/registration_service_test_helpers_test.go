package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"registrar/config"
	"registrar/internal/domain/repository"
	"registrar/internal/domain/service"
	"registrar/internal/infra/auth"
	"registrar/internal/infra/crypto"
	"registrar/internal/infra/metrics"
	"registrar/internal/infra/persistence/memory"
	mockSvc "registrar/internal/mocks/service"

	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(tokenTTL time.Duration, maxAttempts int) *config.Config {
	return &config.Config{
		Registration: &config.RegistrationConfig{
			TokenTTL:           tokenTTL,
			MaxConfirmAttempts: maxAttempts,
		},
	}
}

// registrationFixtures wires the workflow to an in-memory store, a fast bcrypt
// hasher and the real secret generator; only the publisher is mocked.
type registrationFixtures struct {
	service   *registrationService
	repo      repository.RegistrationRepository
	hasher    service.PasswordHasher
	publisher *mockSvc.MockEventPublisher
	clock     time.Time
}

func newRegistrationFixtures(t *testing.T, cfg *config.Config) *registrationFixtures {
	t.Helper()

	fx := &registrationFixtures{
		repo:      memory.NewRegistrationRepository(),
		hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		publisher: mockSvc.NewMockEventPublisher(t),
		clock:     time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	srv := NewRegistrationService(RegistrationServiceParams{
		Repo:      fx.repo,
		Hasher:    fx.hasher,
		Policy:    auth.NewPasswordPolicy(cfg),
		Secrets:   crypto.NewSecretGenerator(crypto.NewRandomSource()),
		Publisher: fx.publisher,
		Metrics:   metrics.Noop(),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*registrationService)
	srv.now = func() time.Time { return fx.clock }
	fx.service = srv

	return fx
}
