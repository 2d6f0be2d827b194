package usecase

import (
	"context"

	"bakehouse/internal/domain/entity"
)

// OrderUsecase hands customer orders off to the shop over WhatsApp.
// Orders are never persisted; the output is a wa.me deep link (or its QR
// rendering) composed with the configured shop number.
type OrderUsecase interface {
	// WhatsAppLink builds the deep link carrying the rendered order message.
	WhatsAppLink(ctx context.Context, order *entity.OrderRequest) (string, error)

	// ChatLink returns the bare wa.me link for the shop.
	ChatLink(ctx context.Context) (string, error)

	// ChatQR renders ChatLink as a PNG QR code.
	ChatQR(ctx context.Context) ([]byte, error)
}
