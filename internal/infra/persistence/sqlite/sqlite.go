// Package sqlite opens a file or in-memory SQLite database for local runs.
package sqlite

import (
	"context"
	"log/slog"

	"registrar/config"
	"registrar/internal/errors"
	"registrar/internal/infra/persistence/gormstore"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const inMemoryDSN = "file::memory:?cache=shared"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens storage.sqlitePath (in-memory when empty) and migrates the schema.
func New(params Params) (*gorm.DB, error) {
	dsn := inMemoryDSN
	if params.Config.Storage != nil && params.Config.Storage.SQLitePath != "" {
		dsn = params.Config.Storage.SQLitePath
	}

	db, err := Open(dsn, gormstore.NewLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return sqlDB.Close()
		},
	})

	params.Logger.Info("SQLite storage ready", slog.String("dsn", dsn))

	return db, nil
}

// Open connects and migrates. SQLite allows a single writer, so the pool is
// limited to one connection and writers queue instead of failing with SQLITE_BUSY.
func Open(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gormstore.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
