package sqlite

import (
	"context"

	"gorm.io/gorm"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/errors"
	"bakehouse/internal/infra/persistence/model"
)

// fastFoodRepository implements repository.FastFoodRepository using GORM.
// The wire-side nested price tiers live in flat nullable columns here; the
// mappers reassemble them on the way out.
type fastFoodRepository struct {
	db *gorm.DB
}

// NewFastFoodRepository is the constructor for fastFoodRepository.
func NewFastFoodRepository(db *gorm.DB) repository.FastFoodRepository {
	return &fastFoodRepository{db: db}
}

// List returns every fast-food item, newest-created first.
func (repo *fastFoodRepository) List(ctx context.Context) ([]*entity.FastFoodItem, error) {
	var rows []model.FastFoodModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fastfood items")
	}

	items := make([]*entity.FastFoodItem, 0, len(rows))
	for i := range rows {
		items = append(items, toFastFoodDomain(&rows[i]))
	}

	return items, nil
}

// FindByID retrieves a single item by its catalog id.
func (repo *fastFoodRepository) FindByID(ctx context.Context, id string) (*entity.FastFoodItem, error) {
	var row model.FastFoodModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find fastfood item by id")
	}

	return toFastFoodDomain(&row), nil
}

// Create persists a new item and copies the stamped timestamps back onto
// the entity.
func (repo *fastFoodRepository) Create(ctx context.Context, item *entity.FastFoodItem) error {
	itemM := fromFastFoodDomain(item)
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateID
		}

		return errors.Wrap(err, "failed to create fastfood item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update replaces every mutable column, including writing NULL for tiers
// the payload left absent. A missing id still reports success.
func (repo *fastFoodRepository) Update(ctx context.Context, item *entity.FastFoodItem) error {
	itemM := fromFastFoodDomain(item)
	result := repo.db.WithContext(ctx).
		Model(&model.FastFoodModel{}).
		Where("id = ?", item.ID).
		Select("name", "category", "image", "price_half", "price_full").
		Updates(itemM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update fastfood item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes the item if present; deleting an unknown id succeeds.
func (repo *fastFoodRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FastFoodModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete fastfood item")
	}

	return nil
}

// Count reports the number of stored items.
func (repo *fastFoodRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.FastFoodModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count fastfood items")
	}

	return total, nil
}

// --- Mapper Functions ---

func toFastFoodDomain(data *model.FastFoodModel) *entity.FastFoodItem {
	if data == nil {
		return nil
	}

	return &entity.FastFoodItem{
		ID:       data.ID,
		Name:     data.Name,
		Category: data.Category,
		Image:    data.Image,
		Prices: entity.PriceTiers{
			Half: data.PriceHalf,
			Full: data.PriceFull,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFastFoodDomain(data *entity.FastFoodItem) *model.FastFoodModel {
	if data == nil {
		return nil
	}

	return &model.FastFoodModel{
		ID:        data.ID,
		Name:      data.Name,
		Category:  data.Category,
		Image:     data.Image,
		PriceHalf: data.Prices.Half,
		PriceFull: data.Prices.Full,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
