package sqlite

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/errors"
	"bakehouse/internal/infra/persistence/model"
)

// siteConfigRepository implements repository.SiteConfigRepository using GORM.
type siteConfigRepository struct {
	db *gorm.DB
}

// NewSiteConfigRepository is the constructor for siteConfigRepository.
func NewSiteConfigRepository(db *gorm.DB) repository.SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

// Load fetches the single settings row, or ErrNotFound before first write.
func (repo *siteConfigRepository) Load(ctx context.Context) (*entity.SiteConfig, error) {
	var row model.SiteConfigModel
	if err := repo.db.WithContext(ctx).Where("id = ?", entity.SiteConfigKey).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load site config")
	}

	return toSiteConfigDomain(&row), nil
}

// Save upserts the full settings record under its well-known key.
func (repo *siteConfigRepository) Save(ctx context.Context, cfg *entity.SiteConfig) error {
	cfgM := fromSiteConfigDomain(cfg)
	cfgM.ID = entity.SiteConfigKey

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(cfgM).Error; err != nil {
		return errors.Wrap(err, "failed to save site config")
	}

	cfg.ID = cfgM.ID
	cfg.CreatedAt = cfgM.CreatedAt
	cfg.UpdatedAt = cfgM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSiteConfigDomain(data *model.SiteConfigModel) *entity.SiteConfig {
	if data == nil {
		return nil
	}

	return &entity.SiteConfig{
		ID:           data.ID,
		ShopName:     data.ShopName,
		Tagline:      data.Tagline,
		WhatsApp:     data.WhatsApp,
		Address:      data.Address,
		HeroTitle:    data.HeroTitle,
		HeroSubtitle: data.HeroSubtitle,
		BannerTitle:  data.BannerTitle,
		BannerText:   data.BannerText,
		ChefTitle:    data.ChefTitle,
		ChefDesc:     data.ChefDesc,
		ChefPrice:    data.ChefPrice,
		ChefTag:      data.ChefTag,
		ChefImage:    data.ChefImage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSiteConfigDomain(data *entity.SiteConfig) *model.SiteConfigModel {
	if data == nil {
		return nil
	}

	return &model.SiteConfigModel{
		ID:           data.ID,
		ShopName:     data.ShopName,
		Tagline:      data.Tagline,
		WhatsApp:     data.WhatsApp,
		Address:      data.Address,
		HeroTitle:    data.HeroTitle,
		HeroSubtitle: data.HeroSubtitle,
		BannerTitle:  data.BannerTitle,
		BannerText:   data.BannerText,
		ChefTitle:    data.ChefTitle,
		ChefDesc:     data.ChefDesc,
		ChefPrice:    data.ChefPrice,
		ChefTag:      data.ChefTag,
		ChefImage:    data.ChefImage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
