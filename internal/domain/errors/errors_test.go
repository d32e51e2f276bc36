package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"registrar/internal/errors"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrValidationFailure.WithDetails("email")

	assert.True(t, errors.Is(detailed, ErrValidationFailure))
	assert.False(t, errors.Is(detailed, ErrInvalidToken))
	assert.Equal(t, "email", detailed.Details())
	assert.Equal(t, "Input validation failed: email", detailed.Error())
}

func TestBaseError_IsThroughWrap(t *testing.T) {
	wrapped := ErrAlreadyFinalized.WithDetails("CONFIRMED").WrapMessage("confirm")

	assert.True(t, errors.Is(wrapped, ErrAlreadyFinalized))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "ALREADY_FINALIZED", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "insert registration")

	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsServerFault(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "validation", err: ErrValidationFailure, want: false},
		{name: "duplicate", err: ErrDuplicateRegistration, want: false},
		{name: "hashing", err: ErrHashingFailure, want: true},
		{name: "database", err: NewDatabaseExecuteError(errors.New("boom"), ""), want: true},
		{name: "plain error", err: errors.New("unknown"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsServerFault(tt.err))
		})
	}
}
