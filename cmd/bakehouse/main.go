package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"bakehouse/config"
	"bakehouse/internal/delivery"
	"bakehouse/internal/delivery/http"
	"bakehouse/internal/delivery/http/middleware"
	"bakehouse/internal/delivery/http/router/handler"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/infra/auth"
	logs "bakehouse/internal/infra/log"
	"bakehouse/internal/infra/persistence"
	"bakehouse/internal/infra/qrcode"
	"bakehouse/internal/usecase"
	"bakehouse/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewStaticVerifier,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewSettingsService,
			impl.NewSessionService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewFastFoodHandler,
			handler.NewSettingsHandler,
			handler.NewSessionHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog loads the starter menu into an empty store before the server
// starts accepting requests.
func seedCatalog(ctx context.Context, cfg *config.Config, catalogUC usecase.CatalogUsecase, logger *slog.Logger) error {
	if !cfg.Seed {
		return nil
	}
	if err := catalogUC.SeedIfEmpty(ctx); err != nil {
		logger.Error("Failed to seed catalog", slog.Any("error", err))

		return err
	}

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
