package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bakehouse/internal/delivery/http/response"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"
)

// SettingsHandler serves the site configuration singleton.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the site configuration, materializing the defaults on the
// first read.
func (h *SettingsHandler) Get(c echo.Context) error {
	cfg, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, cfg)
}

// Update merges the submitted fields over the stored configuration and
// returns the result.
func (h *SettingsHandler) Update(c echo.Context) error {
	var patch *usecase.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return domainerrors.ErrInvalidPayload
	}

	cfg, err := h.uc.Update(c.Request().Context(), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, cfg)
}
