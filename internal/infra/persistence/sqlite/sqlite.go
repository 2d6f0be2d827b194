// Package sqlite contains the relational implementation of the persistence
// layer using GORM over a single SQLite file.
package sqlite

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bakehouse/config"
	"bakehouse/internal/domain/lifecycle"
	"bakehouse/internal/errors"
	"bakehouse/internal/infra/persistence/model"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database, migrates the catalog schema and wires the
// handle into the application lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.Database.Path), &gorm.Config{
		// Duplicate keys must surface as gorm.ErrDuplicatedKey so the
		// repositories can normalize them into the domain conflict error.
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if err := db.AutoMigrate(
		&model.ProductModel{},
		&model.FastFoodModel{},
		&model.SiteConfigModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate catalog schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// One writer at a time; SQLite serializes writes anyway.
	sqlDB.SetMaxOpenConns(1)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
