// Package constants holds identifiers shared between configuration and wiring.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
	PubSubProviderLocal   = "local"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverMemory   = "memory"
)

// Password hashing algorithms
const (
	PasswordAlgorithmBcrypt   = "bcrypt"
	PasswordAlgorithmArgon2id = "argon2id"
)

// Roles
const (
	RoleAdmin = "admin"
)

// Pub/Sub message attributes
const (
	AttributeRequestID      = "request_id"
	AttributeRegistrationID = "registration_id"
	AttributeEventType      = "event_type"

	EventTypeConfirmationRequested = "registration.confirmation_requested"
)
