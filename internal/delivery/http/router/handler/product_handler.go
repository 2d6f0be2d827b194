// Package handler contains the HTTP handlers for the storefront API.
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

// ProductHandler serves the simple-product catalog routes.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all products newest first, optionally narrowed by the
// category and search query parameters. The body is a bare JSON array.
func (h *ProductHandler) List(c echo.Context) error {
	filter := catalog.Filter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	items, err := h.uc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}
	if items == nil {
		items = []*entity.Product{}
	}

	return response.JSON(c, items)
}

// Get returns a single product, or literal null when the id is unknown.
func (h *ProductHandler) Get(c echo.Context) error {
	item, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	if item == nil {
		return response.JSON(c, nil)
	}

	return response.JSON(c, item)
}

// Create stores a new product from the admin form payload.
func (h *ProductHandler) Create(c echo.Context) error {
	var payload catalog.ItemPayload
	if err := c.Bind(&payload); err != nil {
		return domainerrors.ErrInvalidPayload
	}

	item, err := h.uc.CreateProduct(c.Request().Context(), payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, item.ID)
}

// Update replaces the stored product state; unknown ids succeed quietly.
func (h *ProductHandler) Update(c echo.Context) error {
	var payload catalog.ItemPayload
	if err := c.Bind(&payload); err != nil {
		return domainerrors.ErrInvalidPayload
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), payload); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c)
}

// Delete removes a product; deleting an unknown id still succeeds.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c)
}
