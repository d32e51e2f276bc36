package handler

import (
	"fmt"

	"github.com/pkg/errors"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether err should be redelivered by the broker.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
