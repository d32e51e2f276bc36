// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the confirmation state of a registration request.
type RegistrationStatus string

const (
	// StatusPending is the initial state; the request awaits confirmation.
	StatusPending RegistrationStatus = "PENDING"
	// StatusConfirmed is terminal; the account was activated with the issued secret.
	StatusConfirmed RegistrationStatus = "CONFIRMED"
	// StatusRejected is terminal; the request was refused by an administrator or expired.
	StatusRejected RegistrationStatus = "REJECTED"
)

// String returns the string representation of the RegistrationStatus.
func (s RegistrationStatus) String() string {
	return string(s)
}

// IsValid checks if the RegistrationStatus is a known value.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible from s.
func (s RegistrationStatus) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusRejected
}

// CanTransitionTo reports whether next is a legal successor of s.
// Only PENDING -> CONFIRMED and PENDING -> REJECTED are allowed.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	return s == StatusPending && next.IsTerminal()
}

// RegistrationRequest is a not-yet-confirmed account creation attempt.
type RegistrationRequest struct {
	ID              uuid.UUID          // Stable identifier, also used as the dispatch message ID.
	Username        string             // Unique login name requested by the user.
	FirstName       string             // Given name.
	LastName        string             // Family name.
	Email           string             // Unique contact address; the confirmation secret is sent here.
	Website         string             // Personal or institutional website.
	PasswordHash    string             // Self-describing salted hash; never the plaintext password.
	Secret          string             // Hex confirmation token, issued once and consumed by confirmation.
	Status          RegistrationStatus // Confirmation state.
	ConfirmAttempts int                // Confirmation attempts reserved while PENDING, capped by the store.
	ExpiresAt       time.Time          // Confirmation deadline; zero means the request never expires.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanonicalAttributes returns the identity attributes in the fixed order used
// to derive the confirmation secret.
func (r *RegistrationRequest) CanonicalAttributes() []string {
	return []string{r.Username, r.FirstName, r.LastName, r.Email, r.Website}
}

// IsExpired reports whether the confirmation deadline has passed at now.
func (r *RegistrationRequest) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}
