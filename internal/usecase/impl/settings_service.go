package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "bakehouse/internal/delivery/context"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/usecase"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settings repository.SiteConfigRepository
	logger   *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	settings repository.SiteConfigRepository,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		settings: settings,
		logger:   logger,
	}
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the site configuration. When no record exists yet the
// defaults are written through first, so two concurrent first reads both
// observe the same persisted state.
func (srv *settingsService) Get(ctx context.Context) (*entity.SiteConfig, error) {
	cfg, err := srv.settings.Load(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		srv.log(ctx).Error("Failed to load site config", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err, "load site config")
	}

	cfg = entity.DefaultSiteConfig()
	if err := srv.settings.Save(ctx, cfg); err != nil {
		srv.log(ctx).Error("Failed to persist default site config", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err, "save default site config")
	}

	srv.log(ctx).Info("Initialized site config with defaults")

	return cfg, nil
}

// Update applies the non-nil patch fields over the current configuration
// and returns the merged result. Unlike catalog updates this is a
// field-level merge: omitted fields keep their stored values.
func (srv *settingsService) Update(ctx context.Context, patch *usecase.SettingsPatch) (*entity.SiteConfig, error) {
	cfg, err := srv.Get(ctx)
	if err != nil {
		return nil, err
	}

	applyPatch(cfg, patch)

	if err := srv.settings.Save(ctx, cfg); err != nil {
		srv.log(ctx).Error("Failed to save site config", slog.Any("error", err))

		return nil, domainerrors.NewStorageError(err, "save site config")
	}

	srv.log(ctx).Info("Site config updated")

	return cfg, nil
}

func applyPatch(cfg *entity.SiteConfig, patch *usecase.SettingsPatch) {
	if patch == nil {
		return
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&cfg.ShopName, patch.ShopName)
	setString(&cfg.Tagline, patch.Tagline)
	setString(&cfg.WhatsApp, patch.WhatsApp)
	setString(&cfg.Address, patch.Address)
	setString(&cfg.HeroTitle, patch.HeroTitle)
	setString(&cfg.HeroSubtitle, patch.HeroSubtitle)
	setString(&cfg.BannerTitle, patch.BannerTitle)
	setString(&cfg.BannerText, patch.BannerText)
	setString(&cfg.ChefTitle, patch.ChefTitle)
	setString(&cfg.ChefDesc, patch.ChefDesc)
	setString(&cfg.ChefTag, patch.ChefTag)
	setString(&cfg.ChefImage, patch.ChefImage)

	if patch.ChefPrice != nil {
		cfg.ChefPrice = *patch.ChefPrice
	}
}
