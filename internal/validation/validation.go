// Package validation configures the shared go-playground validator: field
// names come from json tags and "notblank" rejects whitespace-only strings.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"registrar/internal/errors"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the project's tag name function and custom rules.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration on a fresh validator only fails for an empty tag.
	_ = v.RegisterValidation("notblank", notBlank)

	return v
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}

	return strings.TrimSpace(field.String()) != ""
}

// FirstViolation returns the first failing field of a validation error and a
// human-readable reason. ok is false when err is not a validation error.
func FirstViolation(err error) (field, reason string, ok bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "", "", false
	}

	fe := validationErrs[0]

	return fe.Field(), describe(fe), true
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
