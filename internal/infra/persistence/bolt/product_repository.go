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

// productRepository implements repository.ProductRepository on a bbolt
// bucket of JSON documents keyed by catalog id.
type productRepository struct {
	db *bbolt.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *bbolt.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns every product, newest-created first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	products := make([]*entity.Product, 0)
	err := repo.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(productsBucket).ForEach(func(_, value []byte) error {
			var product entity.Product
			if err := json.Unmarshal(value, &product); err != nil {
				return errors.Wrap(err, "failed to decode product document")
			}
			products = append(products, &product)

			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	return products, nil
}

// FindByID retrieves a single product by its catalog id.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var product *entity.Product
	err := repo.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(productsBucket).Get([]byte(id))
		if value == nil {
			return repository.ErrNotFound
		}

		product = new(entity.Product)

		return errors.Wrap(json.Unmarshal(value, product), "failed to decode product document")
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// Create persists a new product, stamping both timestamps.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := repo.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(productsBucket)
		if bucket.Get([]byte(product.ID)) != nil {
			return repository.ErrDuplicateID
		}

		now := time.Now().UTC()
		product.CreatedAt = now
		product.UpdatedAt = now

		value, err := json.Marshal(product)
		if err != nil {
			return errors.Wrap(err, "failed to encode product document")
		}

		return errors.Wrap(bucket.Put([]byte(product.ID), value), "failed to store product document")
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return repository.ErrDuplicateID
		}

		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

// Update replaces every mutable field, preserving CreatedAt. A missing id
// is a no-op reported as success.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := repo.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(productsBucket)
		stored := bucket.Get([]byte(product.ID))
		if stored == nil {
			return nil
		}

		var existing entity.Product
		if err := json.Unmarshal(stored, &existing); err != nil {
			return errors.Wrap(err, "failed to decode product document")
		}

		product.CreatedAt = existing.CreatedAt
		product.UpdatedAt = time.Now().UTC()

		value, err := json.Marshal(product)
		if err != nil {
			return errors.Wrap(err, "failed to encode product document")
		}

		return errors.Wrap(bucket.Put([]byte(product.ID), value), "failed to store product document")
	})
	if err != nil {
		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

// Delete removes the product if present; deleting an unknown id succeeds.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := repo.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(productsBucket).Delete([]byte(id))
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// Count reports the number of stored products.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64
	err := repo.db.View(func(tx *bbolt.Tx) error {
		total = int64(tx.Bucket(productsBucket).Stats().KeyN)

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}
