package bolt

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/errors"
)

// fastFoodRepository implements repository.FastFoodRepository on a bbolt
// bucket. The documents keep the nested price tiers as-is, so absent tiers
// round-trip as JSON null without any flattening.
type fastFoodRepository struct {
	db *bbolt.DB
}

// NewFastFoodRepository is the constructor for fastFoodRepository.
func NewFastFoodRepository(db *bbolt.DB) repository.FastFoodRepository {
	return &fastFoodRepository{db: db}
}

// List returns every fast-food item, newest-created first.
func (repo *fastFoodRepository) List(ctx context.Context) ([]*entity.FastFoodItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	items := make([]*entity.FastFoodItem, 0)
	err := repo.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(fastFoodBucket).ForEach(func(_, value []byte) error {
			var item entity.FastFoodItem
			if err := json.Unmarshal(value, &item); err != nil {
				return errors.Wrap(err, "failed to decode fastfood document")
			}
			items = append(items, &item)

			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fastfood items")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

// FindByID retrieves a single item by its catalog id.
func (repo *fastFoodRepository) FindByID(ctx context.Context, id string) (*entity.FastFoodItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var item *entity.FastFoodItem
	err := repo.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(fastFoodBucket).Get([]byte(id))
		if value == nil {
			return repository.ErrNotFound
		}

		item = new(entity.FastFoodItem)

		return errors.Wrap(json.Unmarshal(value, item), "failed to decode fastfood document")
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find fastfood item by id")
	}

	return item, nil
}

// Create persists a new item, stamping both timestamps.
func (repo *fastFoodRepository) Create(ctx context.Context, item *entity.FastFoodItem) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := repo.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(fastFoodBucket)
		if bucket.Get([]byte(item.ID)) != nil {
			return repository.ErrDuplicateID
		}

		now := time.Now().UTC()
		item.CreatedAt = now
		item.UpdatedAt = now

		value, err := json.Marshal(item)
		if err != nil {
			return errors.Wrap(err, "failed to encode fastfood document")
		}

		return errors.Wrap(bucket.Put([]byte(item.ID), value), "failed to store fastfood document")
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return repository.ErrDuplicateID
		}

		return errors.Wrap(err, "failed to create fastfood item")
	}

	return nil
}

// Update replaces every mutable field, preserving CreatedAt. A missing id
// is a no-op reported as success.
func (repo *fastFoodRepository) Update(ctx context.Context, item *entity.FastFoodItem) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := repo.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(fastFoodBucket)
		stored := bucket.Get([]byte(item.ID))
		if stored == nil {
			return nil
		}

		var existing entity.FastFoodItem
		if err := json.Unmarshal(stored, &existing); err != nil {
			return errors.Wrap(err, "failed to decode fastfood document")
		}

		item.CreatedAt = existing.CreatedAt
		item.UpdatedAt = time.Now().UTC()

		value, err := json.Marshal(item)
		if err != nil {
			return errors.Wrap(err, "failed to encode fastfood document")
		}

		return errors.Wrap(bucket.Put([]byte(item.ID), value), "failed to store fastfood document")
	})
	if err != nil {
		return errors.Wrap(err, "failed to update fastfood item")
	}

	return nil
}

// Delete removes the item if present; deleting an unknown id succeeds.
func (repo *fastFoodRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := repo.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(fastFoodBucket).Delete([]byte(id))
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete fastfood item")
	}

	return nil
}

// Count reports the number of stored items.
func (repo *fastFoodRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64
	err := repo.db.View(func(tx *bbolt.Tx) error {
		total = int64(tx.Bucket(fastFoodBucket).Stats().KeyN)

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count fastfood items")
	}

	return total, nil
}
