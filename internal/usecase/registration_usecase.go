// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
)

const (
	// SubmissionAcceptedMessage is returned when a request was stored and dispatched.
	SubmissionAcceptedMessage = "Please check your email to complete the registration."
	// ConfirmedMessage is returned after a successful confirmation.
	ConfirmedMessage = "Your registration has been confirmed."
	// RejectedMessage is returned after an administrative rejection.
	RejectedMessage = "The registration request has been rejected."
)

// --- Input DTOs ---

// SubmitInput holds the six required registration values. Field order is the
// order in which missing values are reported.
type SubmitInput struct {
	Username  string `json:"username" validate:"notblank,max=255"`
	FirstName string `json:"firstname" validate:"notblank,max=255"`
	LastName  string `json:"lastname" validate:"notblank,max=255"`
	Email     string `json:"email" validate:"notblank,max=255"`
	Website   string `json:"website" validate:"notblank,max=255"`
	Password  string `json:"password" validate:"notblank,max=255"`
}

// ConfirmInput identifies a pending request and carries the delivered token.
type ConfirmInput struct {
	Username string `json:"username" validate:"notblank"`
	Token    string `json:"token" validate:"notblank"`
}

// --- Output DTOs ---

// Outcome is the caller-facing result of a workflow step. A failed outcome
// always carries Failure; the workflow never returns a bare error.
type Outcome struct {
	Success bool
	Message string
	// Status is the request status after the step, when a request was found.
	Status entity.RegistrationStatus
	// Field names the first offending input for validation failures.
	Field   string
	Failure domainerrors.AppError
}

// Err returns the failure as an error, or nil for a successful outcome.
func (o *Outcome) Err() error {
	if o == nil || o.Success || o.Failure == nil {
		return nil
	}

	return o.Failure
}

// RegistrationUsecase is the registration workflow: submission, confirmation
// and the administrative transitions of a pending request.
type RegistrationUsecase interface {
	Submit(ctx context.Context, input *SubmitInput) *Outcome
	Confirm(ctx context.Context, input *ConfirmInput) *Outcome
	Reject(ctx context.Context, username string) *Outcome
	// ExpireStale rejects every pending request whose deadline passed before now.
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}
