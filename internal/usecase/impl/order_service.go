package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	deliverycontext "bakehouse/internal/delivery/context"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/usecase"
)

// orderService implements the OrderUsecase interface. Orders are relayed,
// never stored: the service only composes wa.me links against the
// configured shop number.
type orderService struct {
	settings repository.SiteConfigRepository
	qr       service.QRCodeService
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	settings repository.SiteConfigRepository,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		settings: settings,
		qr:       qr,
		logger:   logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// shopNumber reads the configured WhatsApp number, falling back to the
// default configuration when none has been saved yet.
func (srv *orderService) shopNumber(ctx context.Context) (string, error) {
	cfg, err := srv.settings.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.DefaultSiteConfig().WhatsApp, nil
		}

		return "", domainerrors.NewStorageError(err, "load site config")
	}

	return cfg.WhatsApp, nil
}

// WhatsAppLink builds the deep link opening a chat with the shop,
// pre-filled with the rendered order message.
func (srv *orderService) WhatsAppLink(ctx context.Context, order *entity.OrderRequest) (string, error) {
	number, err := srv.shopNumber(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve shop number", slog.Any("error", err))

		return "", err
	}

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + number,
		RawQuery: url.Values{"text": {renderOrderMessage(order)}}.Encode(),
	}

	srv.log(ctx).Info("Order link composed", slog.String("contact", order.Contact))

	return link.String(), nil
}

// ChatLink returns the bare wa.me link for the shop.
func (srv *orderService) ChatLink(ctx context.Context) (string, error) {
	number, err := srv.shopNumber(ctx)
	if err != nil {
		return "", err
	}

	return "https://wa.me/" + number, nil
}

// ChatQR renders ChatLink as a PNG so the storefront can show a scannable
// code at the counter.
func (srv *orderService) ChatQR(ctx context.Context) ([]byte, error) {
	link, err := srv.ChatLink(ctx)
	if err != nil {
		return nil, err
	}

	png, err := srv.qr.EncodePNG(link)
	if err != nil {
		srv.log(ctx).Error("Failed to encode QR code", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to encode QR code")
	}

	return png, nil
}

// renderOrderMessage flattens the order into the plain-text message the
// customer sends. Free-text items win over the structured cart; the cart
// is rendered as "Name (₹price)" lines joined by commas.
func renderOrderMessage(order *entity.OrderRequest) string {
	items := order.Items
	if items == "" && len(order.Cart) > 0 {
		parts := make([]string, 0, len(order.Cart))
		for _, line := range order.Cart {
			parts = append(parts, fmt.Sprintf("%s (₹%d)", line.Name, line.Price))
		}
		items = strings.Join(parts, ", ")
	}

	return fmt.Sprintf("Order Request\nName: %s\nContact: %s\nDate: %s\nItems: %s\nNotes: %s",
		order.Name, order.Contact, order.Date, items, order.Notes)
}
