package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/kevin997/csl-payments/internal/pkg/config"
	"github.com/kevin997/csl-payments/internal/pkg/database"
	gatewaypkg "github.com/kevin997/csl-payments/internal/pkg/gateway"
	"github.com/kevin997/csl-payments/internal/pkg/health"
	"github.com/kevin997/csl-payments/internal/pkg/logger"
	"github.com/kevin997/csl-payments/internal/pkg/middleware"
	"github.com/kevin997/csl-payments/internal/pkg/nats"
	nrpkg "github.com/kevin997/csl-payments/internal/pkg/newrelic"
	"github.com/kevin997/csl-payments/internal/pkg/server"
	"github.com/kevin997/csl-payments/services/payments/gateway"
	"github.com/kevin997/csl-payments/services/payments/handler"
	"github.com/kevin997/csl-payments/services/payments/repository"
	"github.com/kevin997/csl-payments/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := "config/payments.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	repo := repository.NewPostgresRepo(postgresClient.GetDB())

	// Provider registry sharing one HTTP client with the configured timeout
	registry := gatewaypkg.NewRegistry(time.Duration(configs.Payment.GatewayTimeout) * time.Second)

	// External collaborators (tax, exchange rates, NATS events)
	paymentGW := gateway.NewPaymentGW(configs, natsClient)

	// Usecases
	configCache := usecase.NewConfigCache(repo, redisClient,
		time.Duration(configs.Payment.ConfigCacheTTL)*time.Second)
	paymentUC := usecase.NewPaymentUC(configs, repo, repo, repo, repo, registry, paymentGW, configCache)
	commissionUC := usecase.NewCommissionUC(repo, paymentGW)
	withdrawalUC := usecase.NewWithdrawalUC(repo, repo, configCache, paymentGW)

	// Handlers
	paymentHandler := handler.NewHandler(paymentUC, commissionUC, withdrawalUC, configCache, configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Recover())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))

	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	paymentHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
