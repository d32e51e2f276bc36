package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel mirrors the 'registration_requests' table. The unique
// indexes on username and email are what make Insert atomic with respect to
// duplicate submissions.
type RegistrationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_registration_requests_username"`
	FirstName       string     `gorm:"type:varchar(255);not null"`
	LastName        string     `gorm:"type:varchar(255);not null"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_registration_requests_email"`
	Website         string     `gorm:"type:varchar(255);not null"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	Secret          string     `gorm:"type:char(64);not null"`
	Status          string     `gorm:"type:varchar(16);not null;index:idx_registration_requests_status_expires,priority:1"`
	ConfirmAttempts int        `gorm:"not null;default:0"`
	ExpiresAt       *time.Time `gorm:"index:idx_registration_requests_status_expires,priority:2"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registration_requests"
}
