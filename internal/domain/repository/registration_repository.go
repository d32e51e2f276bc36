// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"registrar/internal/domain/entity"
)

var (
	// ErrRegistrationNotFound is returned when no request matches the lookup key.
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrDuplicateRegistration is returned by Insert when the username or email is already taken.
	ErrDuplicateRegistration = errors.New("registration already exists")
)

// RegistrationRepository defines the narrow persistence contract of the registration workflow.
// The application layer will depend on this interface, not the concrete implementation.
type RegistrationRepository interface {
	// Insert atomically persists a new request. Uniqueness of username and email is
	// enforced by the store; a conflict yields ErrDuplicateRegistration.
	Insert(ctx context.Context, req *entity.RegistrationRequest) error

	// FindByKey retrieves a request by username.
	FindByKey(ctx context.Context, username string) (*entity.RegistrationRequest, error)

	// ConditionalUpdateStatus moves the request to next only if its current status is
	// expected. It reports false when the precondition did not hold.
	ConditionalUpdateStatus(ctx context.Context, username string, expected, next entity.RegistrationStatus) (bool, error)

	// ReserveConfirmAttempt atomically increments the attempt counter of a PENDING
	// request whose counter is below limit. A limit of zero or less means no cap.
	// It reports false when the request is missing, finalized, or at the cap.
	ReserveConfirmAttempt(ctx context.Context, username string, limit int) (bool, error)

	// RejectExpired moves every PENDING request whose deadline passed before now to
	// REJECTED and returns how many were affected.
	RejectExpired(ctx context.Context, now time.Time) (int64, error)
}
