// Package validator adapts the shared validator to echo.Validator.
package validator

import (
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/validation"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates the validator installed on the echo server.
func New() *EchoValidator {
	return &EchoValidator{validate: validation.New()}
}

// Validate returns a VALIDATION_FAILURE naming the first offending field.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	if _, reason, ok := validation.FirstViolation(err); ok {
		return domainerrors.ErrValidationFailure.WithDetails(reason)
	}

	return domainerrors.ErrValidationFailure.WithDetails(err.Error())
}
