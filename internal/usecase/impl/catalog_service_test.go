package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bakehouse/internal/catalog"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/repository"
	mockRepo "bakehouse/internal/mocks/repository"
	"bakehouse/internal/usecase"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service  usecase.CatalogUsecase
	products *mockRepo.MockProductRepository
	fastFood *mockRepo.MockFastFoodRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	products := mockRepo.NewMockProductRepository(t)
	fastFood := mockRepo.NewMockFastFoodRepository(t)
	service := NewCatalogService(products, fastFood, slog.Default())

	return catalogServiceFixtures{
		service:  service,
		products: products,
		fastFood: fastFood,
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	item, err := fx.service.CreateProduct(ctx, catalog.ItemPayload{
		ID:       "cake9",
		Name:     "Mango Cake",
		Price:    float64(500),
		Category: "Cakes",
	})
	require.NoError(t, err)
	assert.Equal(t, "cake9", item.ID)
	assert.Equal(t, 500, item.Price)
}

func TestCatalogService_CreateProduct_MissingFields(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), catalog.ItemPayload{Name: "nameless"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestCatalogService_CreateProduct_DuplicateID(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateID)

	_, err := fx.service.CreateProduct(ctx, catalog.ItemPayload{
		ID:       "cake1",
		Name:     "Chocolate Truffle Cake",
		Price:    799,
		Category: "Cakes",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateItem)
}

func TestCatalogService_GetProduct_Absent(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("FindByID", ctx, "ghost").Return(nil, repository.ErrNotFound)

	item, err := fx.service.GetProduct(ctx, "ghost")
	require.NoError(t, err, "an unknown id is not an error")
	assert.Nil(t, item)
}

func TestCatalogService_GetProduct_StorageFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("FindByID", ctx, "cake1").Return(nil, errors.New("disk on fire"))

	_, err := fx.service.GetProduct(ctx, "cake1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestCatalogService_ListProducts_Filtered(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("List", ctx).Return([]*entity.Product{
		{ID: "p1", Name: "Chocolate Cake", Category: "Cakes"},
		{ID: "p2", Name: "Butter Cookies", Category: "Cookies"},
	}, nil)

	items, err := fx.service.ListProducts(ctx, catalog.Filter{Category: "Cookies"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
}

func TestCatalogService_UpdateProduct_UnknownIDSucceeds(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	err := fx.service.UpdateProduct(ctx, "ghost", catalog.ItemPayload{Name: "whatever"})
	assert.NoError(t, err)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("Delete", ctx, "cake1").Return(nil)

	assert.NoError(t, fx.service.DeleteProduct(ctx, "cake1"))
}

func TestCatalogService_UpdateFastFood_FullReplace(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.fastFood.On("Update", ctx, mock.MatchedBy(func(item *entity.FastFoodItem) bool {
		return item.ID == "ff1" && item.Prices.Half == nil && item.Prices.Full != nil
	})).Return(nil)

	err := fx.service.UpdateFastFood(ctx, "ff1", catalog.ItemPayload{
		Name:     "Steam Momos (Veg.)",
		Category: "Momos",
		Prices:   &catalog.TiersPayload{Full: float64(60)},
	})
	assert.NoError(t, err, "a tier missing from the payload is withdrawn")
}

func TestCatalogService_SeedIfEmpty(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("Count", ctx).Return(int64(0), nil)
	fx.products.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil).Times(len(catalog.DefaultProducts()))
	fx.fastFood.On("Create", ctx, mock.AnythingOfType("*entity.FastFoodItem")).
		Return(nil).Times(len(catalog.DefaultFastFood()))

	assert.NoError(t, fx.service.SeedIfEmpty(ctx))
}

func TestCatalogService_SeedIfEmpty_SkipsPopulatedStore(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.products.On("Count", ctx).Return(int64(5), nil)

	assert.NoError(t, fx.service.SeedIfEmpty(ctx))
}
