package main

import (
	"context"
	"log/slog"
	"os"

	"darkstore/config"
	"darkstore/internal/delivery"
	"darkstore/internal/delivery/http"
	"darkstore/internal/delivery/http/middleware"
	"darkstore/internal/delivery/http/router/handler"
	"darkstore/internal/domain/service"
	"darkstore/internal/infra/auth"
	logs "darkstore/internal/infra/log"
	"darkstore/internal/infra/notification"
	"darkstore/internal/infra/payment"
	"darkstore/internal/infra/persistence/postgres"
	"darkstore/internal/infra/pubsub"
	"darkstore/internal/infra/qrcode"
	"darkstore/internal/infra/suggest"
	"darkstore/internal/usecase/impl"

	"go.uber.org/fx"
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewFavoriteRepository,
			postgres.NewOrderRepository,
			postgres.NewMessageRepository,
			postgres.NewCheckoutRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewTelegramNotifier,
			payment.NewYooKassaService,
			suggest.NewHTTPSuggester,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewContactService,
			impl.NewProfileService,
			impl.NewAdminService,
			impl.NewAnalyticsService,
			impl.NewSuggestService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewContactHandler,
			handler.NewProfileHandler,
			handler.NewSuggestHandler,
			handler.NewAnalyticsHandler,
			handler.NewAdminHandler,
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
