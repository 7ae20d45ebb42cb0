package main

import (
	"context"
	"log/slog"
	"os"

	"syncfloww/config"
	"syncfloww/internal/delivery"
	"syncfloww/internal/delivery/api"
	"syncfloww/internal/delivery/api/middleware"
	"syncfloww/internal/delivery/api/router/handler"
	"syncfloww/internal/infra/auth"
	"syncfloww/internal/infra/auth/facebook"
	"syncfloww/internal/infra/auth/google"
	"syncfloww/internal/infra/auth/jwks"
	logs "syncfloww/internal/infra/log"
	"syncfloww/internal/infra/persistence/postgres"
	"syncfloww/internal/infra/pubsub"
	"syncfloww/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewProjectRepository,
			postgres.NewBrandRepository,
			postgres.NewSocialAccountRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewAIAgentRepository,
			postgres.NewAgentTaskRepository,
			postgres.NewAIConfigurationRepository,
			postgres.NewAutomationRuleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			jwks.NewVerifier,
			pubsub.NewEventPublisher,
			fx.Annotate(
				google.NewProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
			fx.Annotate(
				facebook.NewProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewProjectService,
			impl.NewBrandService,
			impl.NewSocialService,
			impl.NewAnalyticsService,
			impl.NewAgentService,
			impl.NewAIConfigurationService,
			impl.NewAutomationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRootHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewProjectHandler,
			handler.NewBrandHandler,
			handler.NewSocialHandler,
			handler.NewAIHandler,
			handler.NewAutomationHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
