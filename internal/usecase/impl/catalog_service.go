// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"bakehouse/internal/catalog"
	deliverycontext "bakehouse/internal/delivery/context"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/usecase"
)

// catalogService implements the CatalogUsecase interface on top of the two
// item repositories. It is agnostic to the storage engine behind them.
type catalogService struct {
	products repository.ProductRepository
	fastFood repository.FastFoodRepository
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	products repository.ProductRepository,
	fastFood repository.FastFoodRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		products: products,
		fastFood: fastFood,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns products newest first, narrowed by the filter.
func (srv *catalogService) ListProducts(ctx context.Context, filter catalog.Filter) ([]*entity.Product, error) {
	items, err := srv.products.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err, "list products")
	}

	return catalog.FilterProducts(items, filter), nil
}

// GetProduct returns the product with the given id, or (nil, nil) when no
// such product exists.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	item, err := srv.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		srv.log(ctx).Error("Failed to find product", slog.Any("error", err), slog.String("id", id))

		return nil, domainerrors.NewStorageError(err, "find product")
	}

	return item, nil
}

// CreateProduct validates the payload and stores a new product. A payload
// reusing an existing id is rejected with ErrDuplicateItem.
func (srv *catalogService) CreateProduct(ctx context.Context, payload catalog.ItemPayload) (*entity.Product, error) {
	item, err := catalog.NormalizeProduct(payload)
	if err != nil {
		return nil, err
	}

	if err := srv.products.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateItem, "product id already in use")
		}
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err), slog.String("id", item.ID))

		return nil, domainerrors.NewStorageError(err, "create product")
	}

	srv.log(ctx).Info("Product created", slog.String("id", item.ID), slog.String("name", item.Name))

	return item, nil
}

// UpdateProduct replaces the stored product state wholesale. Updating an
// unknown id is a no-op that still reports success.
func (srv *catalogService) UpdateProduct(ctx context.Context, id string, payload catalog.ItemPayload) error {
	item := catalog.ProductForUpdate(id, payload)

	if err := srv.products.Update(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.String("id", id))

		return domainerrors.NewStorageError(err, "update product")
	}

	return nil
}

// DeleteProduct removes the product if present; deleting an unknown id
// succeeds quietly.
func (srv *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.products.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("error", err), slog.String("id", id))

		return domainerrors.NewStorageError(err, "delete product")
	}

	return nil
}

// ListFastFood returns fast-food items newest first, narrowed by the filter.
func (srv *catalogService) ListFastFood(ctx context.Context, filter catalog.Filter) ([]*entity.FastFoodItem, error) {
	items, err := srv.fastFood.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list fast food items", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err, "list fast food")
	}

	return catalog.FilterFastFood(items, filter), nil
}

// GetFastFood returns the item with the given id, or (nil, nil) when absent.
func (srv *catalogService) GetFastFood(ctx context.Context, id string) (*entity.FastFoodItem, error) {
	item, err := srv.fastFood.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		srv.log(ctx).Error("Failed to find fast food item", slog.Any("error", err), slog.String("id", id))

		return nil, domainerrors.NewStorageError(err, "find fast food item")
	}

	return item, nil
}

// CreateFastFood validates the payload and stores a new fast-food item.
func (srv *catalogService) CreateFastFood(ctx context.Context, payload catalog.ItemPayload) (*entity.FastFoodItem, error) {
	item, err := catalog.NormalizeFastFood(payload)
	if err != nil {
		return nil, err
	}

	if err := srv.fastFood.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateItem, "fast food id already in use")
		}
		srv.log(ctx).Error("Failed to create fast food item", slog.Any("error", err), slog.String("id", item.ID))

		return nil, domainerrors.NewStorageError(err, "create fast food item")
	}

	srv.log(ctx).Info("Fast food item created", slog.String("id", item.ID), slog.String("name", item.Name))

	return item, nil
}

// UpdateFastFood replaces the stored item state wholesale, including
// clearing price tiers the payload no longer offers.
func (srv *catalogService) UpdateFastFood(ctx context.Context, id string, payload catalog.ItemPayload) error {
	item := catalog.FastFoodForUpdate(id, payload)

	if err := srv.fastFood.Update(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to update fast food item", slog.Any("error", err), slog.String("id", id))

		return domainerrors.NewStorageError(err, "update fast food item")
	}

	return nil
}

// DeleteFastFood removes the item if present; unknown ids succeed quietly.
func (srv *catalogService) DeleteFastFood(ctx context.Context, id string) error {
	if err := srv.fastFood.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete fast food item", slog.Any("error", err), slog.String("id", id))

		return domainerrors.NewStorageError(err, "delete fast food item")
	}

	return nil
}

// SeedIfEmpty loads the starter menu into a fresh store. Only the product
// count is consulted, so a catalog that was deliberately emptied of fast
// food but still sells products is not reseeded.
func (srv *catalogService) SeedIfEmpty(ctx context.Context) error {
	count, err := srv.products.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count products")
	}
	if count > 0 {
		return nil
	}

	for _, item := range catalog.DefaultProducts() {
		if err := srv.products.Create(ctx, item); err != nil {
			return errors.Wrapf(err, "failed to seed product %s", item.ID)
		}
	}
	for _, item := range catalog.DefaultFastFood() {
		if err := srv.fastFood.Create(ctx, item); err != nil {
			return errors.Wrapf(err, "failed to seed fast food item %s", item.ID)
		}
	}

	srv.log(ctx).Info("Seeded starter catalog",
		slog.Int("products", len(catalog.DefaultProducts())),
		slog.Int("fast_food", len(catalog.DefaultFastFood())))

	return nil
}
