package main

import (
	"context"
	"log/slog"
	"os"

	"kolotebe/config"
	"kolotebe/internal/delivery"
	"kolotebe/internal/delivery/http"
	"kolotebe/internal/delivery/http/middleware"
	"kolotebe/internal/delivery/http/router/handler"
	"kolotebe/internal/domain/service"
	"kolotebe/internal/infra/auth"
	logs "kolotebe/internal/infra/log"
	"kolotebe/internal/infra/persistence/postgres"
	"kolotebe/internal/infra/qrcode"
	"kolotebe/internal/infra/storage"
	"kolotebe/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewBookRepository,
			postgres.NewBookCopyRepository,
			postgres.NewListingRepository,
			postgres.NewBalanceRepository,
			postgres.NewTransferRepository,
			postgres.NewLocationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewMinIOStorage,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := ""
	if cfg.App != nil {
		baseURL = cfg.App.BaseURL
	}
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(baseURL, 256, "M")
	}

	return qrcode.NewQRCodeService(baseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBookService,
			impl.NewListingService,
			impl.NewProfileService,
			impl.NewLocationService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBookHandler,
			handler.NewListingHandler,
			handler.NewUserHandler,
			handler.NewLocationHandler,
			handler.NewUploadHandler,
			handler.NewOpenAPIHandler,
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
