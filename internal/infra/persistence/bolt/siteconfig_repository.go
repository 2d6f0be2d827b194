package bolt

import (
	"context"
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/errors"
)

// siteConfigRepository implements repository.SiteConfigRepository on a
// single-key bbolt bucket.
type siteConfigRepository struct {
	db *bbolt.DB
}

// NewSiteConfigRepository is the constructor for siteConfigRepository.
func NewSiteConfigRepository(db *bbolt.DB) repository.SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

// Load fetches the settings document, or ErrNotFound before first write.
func (repo *siteConfigRepository) Load(ctx context.Context) (*entity.SiteConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var cfg *entity.SiteConfig
	err := repo.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(siteConfigBucket).Get([]byte(entity.SiteConfigKey))
		if value == nil {
			return repository.ErrNotFound
		}

		cfg = new(entity.SiteConfig)

		return errors.Wrap(json.Unmarshal(value, cfg), "failed to decode site config document")
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load site config")
	}

	cfg.ID = entity.SiteConfigKey

	return cfg, nil
}

// Save upserts the full settings document under its well-known key.
func (repo *siteConfigRepository) Save(ctx context.Context, cfg *entity.SiteConfig) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	err := repo.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(siteConfigBucket)

		now := time.Now().UTC()
		if bucket.Get([]byte(entity.SiteConfigKey)) == nil {
			cfg.CreatedAt = now
		}
		cfg.ID = entity.SiteConfigKey
		cfg.UpdatedAt = now

		value, err := json.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to encode site config document")
		}

		return errors.Wrap(bucket.Put([]byte(entity.SiteConfigKey), value), "failed to store site config document")
	})
	if err != nil {
		return errors.Wrap(err, "failed to save site config")
	}

	return nil
}
