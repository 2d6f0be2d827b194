// Package usecase declares the application-layer contracts and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"bakehouse/internal/catalog"
	"bakehouse/internal/domain/entity"
)

// CatalogUsecase is the application service behind the storefront and
// admin catalog routes. Get returns (nil, nil) for an unknown id — absence
// is a valid result the handler renders as null, not an error.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter catalog.Filter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, payload catalog.ItemPayload) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, payload catalog.ItemPayload) error
	DeleteProduct(ctx context.Context, id string) error

	ListFastFood(ctx context.Context, filter catalog.Filter) ([]*entity.FastFoodItem, error)
	GetFastFood(ctx context.Context, id string) (*entity.FastFoodItem, error)
	CreateFastFood(ctx context.Context, payload catalog.ItemPayload) (*entity.FastFoodItem, error)
	UpdateFastFood(ctx context.Context, id string, payload catalog.ItemPayload) error
	DeleteFastFood(ctx context.Context, id string) error

	// SeedIfEmpty populates an untouched catalog with the starter menu.
	// A store that already holds any product is left alone.
	SeedIfEmpty(ctx context.Context) error
}
