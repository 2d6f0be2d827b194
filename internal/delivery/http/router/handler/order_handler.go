package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bakehouse/internal/delivery/http/response"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/usecase"
)

// OrderHandler serves the WhatsApp hand-off routes.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// WhatsAppLink composes the wa.me deep link for an order form submission.
func (h *OrderHandler) WhatsAppLink(c echo.Context) error {
	var order *entity.OrderRequest
	if err := c.Bind(&order); err != nil || order == nil {
		return domainerrors.ErrInvalidPayload
	}
	if err := c.Validate(order); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.uc.WhatsAppLink(c.Request().Context(), order)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, map[string]string{"url": link})
}

// WhatsAppQR renders the shop chat link as a PNG QR code.
func (h *OrderHandler) WhatsAppQR(c echo.Context) error {
	png, err := h.uc.ChatQR(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
