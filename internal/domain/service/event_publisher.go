package service

import (
	"context"
	"time"
)

// ConfirmationEvent asks the mail worker to deliver a confirmation secret.
type ConfirmationEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	RegistrationID string    `json:"registration_id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	Email          string    `json:"email"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at,omitzero"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishConfirmationRequested publishes a confirmation event for async delivery
	PublishConfirmationRequested(ctx context.Context, event *ConfirmationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
