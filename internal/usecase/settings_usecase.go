package usecase

import (
	"context"

	"bakehouse/internal/domain/entity"
)

// SettingsPatch is a partial site configuration update: only non-nil
// fields are applied. This field-level merge deliberately differs from the
// catalog's full-replace update — the admin settings form submits diffs.
type SettingsPatch struct {
	ShopName     *string `json:"shopName"`
	Tagline      *string `json:"tagline"`
	WhatsApp     *string `json:"whatsapp"`
	Address      *string `json:"address"`
	HeroTitle    *string `json:"heroTitle"`
	HeroSubtitle *string `json:"heroSubtitle"`
	BannerTitle  *string `json:"bannerTitle"`
	BannerText   *string `json:"bannerText"`
	ChefTitle    *string `json:"chefTitle"`
	ChefDesc     *string `json:"chefDesc"`
	ChefPrice    *int    `json:"chefPrice"`
	ChefTag      *string `json:"chefTag"`
	ChefImage    *string `json:"chefImage"`
}

// SettingsUsecase manages the single site configuration record with
// upsert-on-read semantics: a missing record is synthesized from defaults
// and persisted, never treated as an error.
type SettingsUsecase interface {
	Get(ctx context.Context) (*entity.SiteConfig, error)
	Update(ctx context.Context, patch *SettingsPatch) (*entity.SiteConfig, error)
}
