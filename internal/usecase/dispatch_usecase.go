package usecase

import (
	"context"

	"registrar/internal/domain/service"
	"registrar/internal/errors"
)

// ErrMalformedEvent marks a confirmation event that can never be delivered.
// Consumers acknowledge such messages instead of asking for redelivery.
var ErrMalformedEvent = errors.New("malformed confirmation event")

// DispatchUsecase delivers confirmation secrets out of band.
type DispatchUsecase interface {
	DeliverConfirmation(ctx context.Context, event *service.ConfirmationEvent) error
}
