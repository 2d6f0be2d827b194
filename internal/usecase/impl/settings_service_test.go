package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
	mockRepo "bakehouse/internal/mocks/repository"
	"bakehouse/internal/usecase"
)

func strPtr(s string) *string { return &s }

type settingsServiceFixtures struct {
	service  usecase.SettingsUsecase
	settings *mockRepo.MockSiteConfigRepository
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	settings := mockRepo.NewMockSiteConfigRepository(t)
	service := NewSettingsService(settings, slog.Default())

	return settingsServiceFixtures{service: service, settings: settings}
}

func TestSettingsService_Get_MaterializesDefaults(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settings.On("Load", ctx).Return(nil, repository.ErrNotFound).Once()
	fx.settings.On("Save", ctx, mock.AnythingOfType("*entity.SiteConfig")).Return(nil).Once()

	cfg, err := fx.service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corbett Bakers", cfg.ShopName)
	assert.Equal(t, 899, cfg.ChefPrice)
}

func TestSettingsService_Get_ReturnsStored(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	stored := entity.DefaultSiteConfig()
	stored.ShopName = "Hill View Bakers"
	fx.settings.On("Load", ctx).Return(stored, nil)

	cfg, err := fx.service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hill View Bakers", cfg.ShopName)
}

func TestSettingsService_Update_MergesOnlySubmittedFields(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	stored := entity.DefaultSiteConfig()
	fx.settings.On("Load", ctx).Return(stored, nil)
	fx.settings.On("Save", ctx, mock.AnythingOfType("*entity.SiteConfig")).Return(nil)

	price := 999
	cfg, err := fx.service.Update(ctx, &usecase.SettingsPatch{
		Tagline:   strPtr("Fresh out of the oven"),
		ChefPrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fresh out of the oven", cfg.Tagline)
	assert.Equal(t, 999, cfg.ChefPrice)
	assert.Equal(t, "Corbett Bakers", cfg.ShopName, "untouched fields keep their values")
	assert.Equal(t, "919999999999", cfg.WhatsApp)
}

func TestSettingsService_Update_NilPatchIsNoop(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.settings.On("Load", ctx).Return(entity.DefaultSiteConfig(), nil)
	fx.settings.On("Save", ctx, mock.AnythingOfType("*entity.SiteConfig")).Return(nil)

	cfg, err := fx.service.Update(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "Corbett Bakers", cfg.ShopName)
}
