package main

import (
	"context"
	"log/slog"
	"os"

	"glovia/config"
	"glovia/internal/delivery"
	"glovia/internal/delivery/api"
	"glovia/internal/delivery/api/middleware"
	"glovia/internal/delivery/api/router/handler"
	"glovia/internal/infra/auth"
	logs "glovia/internal/infra/log"
	"glovia/internal/infra/notification"
	"glovia/internal/infra/persistence/postgres"
	"glovia/internal/infra/qrcode"
	"glovia/internal/usecase/impl"

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
			postgres.NewProductRepository,
			postgres.NewCustomerRepository,
			postgres.NewQuotationRepository,
			postgres.NewOrderRepository,
			postgres.NewInvoiceRepository,
			postgres.NewFollowUpRepository,
			postgres.NewCommunicationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			notification.NewSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewQuotationService,
			impl.NewOrderService,
			impl.NewInvoiceService,
			impl.NewFollowUpService,
			impl.NewCommunicationService,
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
			handler.NewProductHandler,
			handler.NewQuotationHandler,
			handler.NewOrderHandler,
			handler.NewInvoiceHandler,
			handler.NewFollowUpHandler,
			handler.NewCommunicationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
