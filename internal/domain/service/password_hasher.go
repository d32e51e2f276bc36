// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (bcrypt or argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing hash from a plaintext password.
	// Hashing the same password twice yields different strings.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// The comparison runs in constant time with respect to the stored hash.
	Check(password, hash string) bool
}

// PasswordPolicy checks a candidate password against the configured strength rules.
type PasswordPolicy interface {
	// Validate returns a descriptive error when the password is too weak.
	// userInputs are attribute values the password must not be derived from.
	Validate(password string, userInputs ...string) error
}
