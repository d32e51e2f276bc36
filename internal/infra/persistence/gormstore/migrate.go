package gormstore

import (
	"registrar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the registration schema.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(&model.RegistrationModel{}), "migrate registration schema")
}
