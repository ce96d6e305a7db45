package main

import (
	"context"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/optimat/internal/pkg/config"
	"github.com/piresc/optimat/internal/pkg/database"
	"github.com/piresc/optimat/internal/pkg/health"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/middleware"
	"github.com/piresc/optimat/internal/pkg/server"
	"github.com/piresc/optimat/services/provider/gateway"
	"github.com/piresc/optimat/services/provider/handler"
	"github.com/piresc/optimat/services/provider/repository"
	"github.com/piresc/optimat/services/provider/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "provider-service"
	configPath := "config/provider.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// Initialize gateway
	geocoderGW, err := gateway.NewGeocoderGW(configs.Geocoder, redisClient, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize geocoder", zap.Error(err))
	}

	// Initialize repository
	providerRepo := repository.NewProviderRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize usecase
	providerUC, err := usecase.NewProviderUC(configs, providerRepo, geocoderGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize provider usecase", zap.Error(err))
	}

	// Initialize handlers
	h := handler.NewHandler(providerUC)

	// Initialize NSQ consumer
	if configs.NSQ.Enabled {
		consumer, err := h.Catalog().InitConsumer(configs.NSQ, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to initialize NSQ consumer", zap.Error(err))
		}
		shutdown.Register("nsq", func(context.Context) error {
			consumer.Stop()
			return nil
		})
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	if configs.Server.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	}
	if configs.Server.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second
	}

	// Add middlewares
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: configs.Server.AllowedOrigins,
	}))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.HealthChecker{
		"postgres": health.PingChecker{Pinger: postgresClient},
		"redis":    health.PingChecker{Pinger: redisClient},
	})

	// Register service routes
	var matchMiddleware []echo.MiddlewareFunc
	if configs.RateLimit.Enabled {
		matchMiddleware = append(matchMiddleware, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Resource:    "match",
			Limit:       configs.RateLimit.Limit,
			Period:      configs.RateLimit.Period,
		}))
	}
	h.RegisterRoutes(e, matchMiddleware...)

	// Start server
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown finished with errors", zap.Error(err))
	}
}
