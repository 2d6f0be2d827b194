// Package persistence selects the storage engine at startup and provides
// the repository set for it. Route and application logic never know which
// engine is behind the interfaces.
package persistence

import (
	"log/slog"

	"go.uber.org/fx"

	"bakehouse/config"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/errors"
	"bakehouse/internal/infra/persistence/bolt"
	"bakehouse/internal/infra/persistence/sqlite"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories bundles the storage interfaces provided to the rest of the
// application.
type Repositories struct {
	fx.Out

	Products   repository.ProductRepository
	FastFood   repository.FastFoodRepository
	SiteConfig repository.SiteConfigRepository
}

// New constructs the repository set for the configured driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Database.Driver {
	case "sqlite":
		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Products:   sqlite.NewProductRepository(db),
			FastFood:   sqlite.NewFastFoodRepository(db),
			SiteConfig: sqlite.NewSiteConfigRepository(db),
		}, nil

	case "bolt":
		db, err := bolt.New(bolt.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Products:   bolt.NewProductRepository(db),
			FastFood:   bolt.NewFastFoodRepository(db),
			SiteConfig: bolt.NewSiteConfigRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown database driver: %s", params.Config.Database.Driver)
	}
}
