package repository

import (
	"context"

	"bakehouse/internal/domain/entity"
)

// SiteConfigRepository persists the single global settings record.
// Load returns ErrNotFound when the record has never been written; the
// application layer synthesizes defaults in that case (upsert-on-read).
// Save writes the full record, creating it if absent. The field-level
// merge of partial updates happens above this interface so every storage
// engine shares one code path.
type SiteConfigRepository interface {
	Load(ctx context.Context) (*entity.SiteConfig, error)
	Save(ctx context.Context, cfg *entity.SiteConfig) error
}
