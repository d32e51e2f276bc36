// Package persistence selects the registration store configured by storage.driver.
package persistence

import (
	"log/slog"

	"registrar/config"
	"registrar/internal/domain/constants"
	"registrar/internal/domain/repository"
	"registrar/internal/infra/persistence/gormstore"
	"registrar/internal/infra/persistence/memory"
	"registrar/internal/infra/persistence/postgres"
	"registrar/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRegistrationRepository opens the configured backend and returns its repository.
func NewRegistrationRepository(params Params) (repository.RegistrationRepository, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory registration store; data is lost on restart")

		return memory.NewRegistrationRepository(), nil
	case constants.StorageDriverSQLite:
		db, err = sqlite.New(sqlite.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	case constants.StorageDriverPostgres:
		db, err = postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	default:
		return nil, errors.Errorf("unsupported storage driver: %s", driver)
	}
	if err != nil {
		return nil, err
	}

	return gormstore.NewRegistrationRepository(db), nil
}

// Module provides the registration repository.
var Module = fx.Module("persistence",
	fx.Provide(NewRegistrationRepository),
)
