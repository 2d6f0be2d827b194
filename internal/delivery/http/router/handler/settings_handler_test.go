package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	custommw "bakehouse/internal/delivery/http/middleware"
	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
	mockRepo "bakehouse/internal/mocks/repository"
	"bakehouse/internal/usecase/impl"
)

type settingsHandlerFixtures struct {
	handler  *SettingsHandler
	errorMW  *custommw.ErrorMiddleware
	settings *mockRepo.MockSiteConfigRepository
	echo     *echo.Echo
}

func createTestSettingsHandler(t *testing.T) settingsHandlerFixtures {
	settings := mockRepo.NewMockSiteConfigRepository(t)
	uc := impl.NewSettingsService(settings, slog.Default())

	return settingsHandlerFixtures{
		handler:  NewSettingsHandler(uc, slog.Default()),
		errorMW:  custommw.NewErrorMiddleware(slog.Default()),
		settings: settings,
		echo:     echo.New(),
	}
}

func (f settingsHandlerFixtures) serve(c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		f.errorMW.HandleHTTPError(err, c)
	}
}

func TestSettingsHandler_Get_FirstReadWritesDefaults(t *testing.T) {
	fx := createTestSettingsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.settings.On("Load", req.Context()).Return(nil, repository.ErrNotFound).Once()
	fx.settings.On("Save", req.Context(), mock.AnythingOfType("*entity.SiteConfig")).Return(nil).Once()

	fx.serve(c, fx.handler.Get)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"shopName":"Corbett Bakers"`)
	assert.Contains(t, body, `"chefPrice":899`)
	assert.NotContains(t, body, `"ID"`, "the storage key never leaks onto the wire")
}

func TestSettingsHandler_Update_Merges(t *testing.T) {
	fx := createTestSettingsHandler(t)

	body := `{"tagline":"Fresh out of the oven"}`
	req := httptest.NewRequest(http.MethodPut, "/api/config", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	fx.settings.On("Load", req.Context()).Return(entity.DefaultSiteConfig(), nil)
	fx.settings.On("Save", req.Context(), mock.MatchedBy(func(cfg *entity.SiteConfig) bool {
		return cfg.Tagline == "Fresh out of the oven" && cfg.ShopName == "Corbett Bakers"
	})).Return(nil)

	fx.serve(c, fx.handler.Update)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tagline":"Fresh out of the oven"`)
}
