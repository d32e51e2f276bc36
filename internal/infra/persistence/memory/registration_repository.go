// Package memory keeps registration requests in process memory. It is meant
// for local development and tests; nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"registrar/internal/domain/entity"
	"registrar/internal/domain/repository"

	"github.com/pkg/errors"
)

type registrationRepository struct {
	mu      sync.RWMutex
	byName  map[string]*entity.RegistrationRequest
	byEmail map[string]string
	now     func() time.Time
}

// NewRegistrationRepository returns an empty in-memory store.
func NewRegistrationRepository() repository.RegistrationRepository {
	return &registrationRepository{
		byName:  make(map[string]*entity.RegistrationRequest),
		byEmail: make(map[string]string),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (repo *registrationRepository) Insert(_ context.Context, req *entity.RegistrationRequest) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byName[req.Username]; exists {
		return repository.ErrDuplicateRegistration
	}
	if _, exists := repo.byEmail[req.Email]; exists {
		return repository.ErrDuplicateRegistration
	}

	now := repo.now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now

	stored := *req
	repo.byName[req.Username] = &stored
	repo.byEmail[req.Email] = req.Username

	return nil
}

// FindByKey returns a copy; callers cannot mutate stored state.
func (repo *registrationRepository) FindByKey(_ context.Context, username string) (*entity.RegistrationRequest, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.byName[username]
	if !ok {
		return nil, repository.ErrRegistrationNotFound
	}
	found := *stored

	return &found, nil
}

func (repo *registrationRepository) ConditionalUpdateStatus(_ context.Context, username string, expected, next entity.RegistrationStatus) (bool, error) {
	if !expected.CanTransitionTo(next) {
		return false, errors.Errorf("illegal status transition %s -> %s", expected, next)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.byName[username]
	if !ok || stored.Status != expected {
		return false, nil
	}
	stored.Status = next
	stored.UpdatedAt = repo.now()

	return true, nil
}

// ReserveConfirmAttempt checks the cap and counts the attempt under one lock.
func (repo *registrationRepository) ReserveConfirmAttempt(_ context.Context, username string, limit int) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.byName[username]
	if !ok || stored.Status != entity.StatusPending {
		return false, nil
	}
	if limit > 0 && stored.ConfirmAttempts >= limit {
		return false, nil
	}
	stored.ConfirmAttempts++
	stored.UpdatedAt = repo.now()

	return true, nil
}

func (repo *registrationRepository) RejectExpired(_ context.Context, now time.Time) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var rejected int64
	for _, stored := range repo.byName {
		if stored.Status == entity.StatusPending && stored.IsExpired(now) {
			stored.Status = entity.StatusRejected
			stored.UpdatedAt = now
			rejected++
		}
	}

	return rejected, nil
}
