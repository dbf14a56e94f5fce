package main

import (
	"context"
	"log/slog"
	"os"

	"localhelp/config"
	"localhelp/internal/delivery"
	"localhelp/internal/delivery/http"
	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/router/handler"
	deliverymiddleware "localhelp/internal/delivery/middleware"
	"localhelp/internal/domain/service"
	"localhelp/internal/infra/auth"
	"localhelp/internal/infra/auth/google"
	logs "localhelp/internal/infra/log"
	"localhelp/internal/infra/maptile"
	"localhelp/internal/infra/persistence/postgres"
	"localhelp/internal/infra/pubsub"
	"localhelp/internal/infra/qrcode"
	"localhelp/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPostRepository,
			postgres.NewLostFoundRepository,
			postgres.NewAddressRepository,
			postgres.NewConversationRepository,
			postgres.NewRatingRepository,
			postgres.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewIdentityService,
			newQRCodeService,
			pubsub.NewEventPublisher,
			maptile.NewService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPostService,
			impl.NewSearchService,
			impl.NewLostFoundService,
			impl.NewConversationService,
			impl.NewAddressService,
			impl.NewRatingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPostHandler,
			handler.NewLostFoundHandler,
			handler.NewConversationHandler,
			handler.NewAddressHandler,
			handler.NewRatingHandler,
			handler.NewTileHandler,
			handler.NewTestHandler,
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
