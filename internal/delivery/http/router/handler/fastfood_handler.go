package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bakehouse/internal/catalog"
	"bakehouse/internal/delivery/http/response"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"
)

// FastFoodHandler serves the variant-priced fast-food catalog routes. The
// shapes mirror the product routes except prices sit nested under
// "prices" with independent half/full tiers.
type FastFoodHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewFastFoodHandler is the constructor for FastFoodHandler, injected by Fx.
func NewFastFoodHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *FastFoodHandler {
	return &FastFoodHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all fast-food items newest first as a bare JSON array.
func (h *FastFoodHandler) List(c echo.Context) error {
	filter := catalog.Filter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	items, err := h.uc.ListFastFood(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}
	if items == nil {
		items = []*entity.FastFoodItem{}
	}

	return response.JSON(c, items)
}

// Get returns a single item, or literal null when the id is unknown.
func (h *FastFoodHandler) Get(c echo.Context) error {
	item, err := h.uc.GetFastFood(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if item == nil {
		return response.JSON(c, nil)
	}

	return response.JSON(c, item)
}

// Create stores a new fast-food item.
func (h *FastFoodHandler) Create(c echo.Context) error {
	var payload catalog.ItemPayload
	if err := c.Bind(&payload); err != nil {
		return domainerrors.ErrInvalidPayload
	}

	item, err := h.uc.CreateFastFood(c.Request().Context(), payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, item.ID)
}

// Update replaces the stored item state, including withdrawing tiers the
// payload no longer carries.
func (h *FastFoodHandler) Update(c echo.Context) error {
	var payload catalog.ItemPayload
	if err := c.Bind(&payload); err != nil {
		return domainerrors.ErrInvalidPayload
	}

	if err := h.uc.UpdateFastFood(c.Request().Context(), c.Param("id"), payload); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c)
}

// Delete removes an item; deleting an unknown id still succeeds.
func (h *FastFoodHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteFastFood(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c)
}
