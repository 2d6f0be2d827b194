package repository

import (
	"context"

	"bakehouse/internal/domain/entity"
)

// FastFoodRepository persists variant-priced fast-food items. The contract
// mirrors ProductRepository: caller-supplied ids, newest-first listing,
// full-replace update with no-op success on a missing id, idempotent
// delete, and the shared sentinel errors.
type FastFoodRepository interface {
	List(ctx context.Context) ([]*entity.FastFoodItem, error)
	FindByID(ctx context.Context, id string) (*entity.FastFoodItem, error)
	Create(ctx context.Context, item *entity.FastFoodItem) error
	Update(ctx context.Context, item *entity.FastFoodItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
