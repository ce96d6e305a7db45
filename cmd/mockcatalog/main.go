package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/piresc/optimat/internal/pkg/config"
	"github.com/piresc/optimat/internal/pkg/constants"
	"github.com/piresc/optimat/internal/pkg/database"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/pkg/nsq"
	"github.com/piresc/optimat/services/provider/matcher"
	"github.com/piresc/optimat/services/provider/repository"
	"go.uber.org/zap"
)

// mockcatalog rebuilds <schema>.providers_mock from <schema>.providers
func main() {
	configPath := flag.String("config", "config/provider.env", "env file to load")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for generated schedules")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	zoneDir := flag.String("zones", "", "directory of <provider_name>.geojson files for providers without a zone")
	resetRatio := flag.Float64("reset-hours", repository.DefaultHoursResetRatio, "share of copied schedules replaced by generated ones")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rng := rand.New(rand.NewSource(*seed))
	repo := repository.NewProviderRepository(configs, postgresClient.GetDB(), nil)
	stats, err := repo.RebuildMockCatalog(ctx, repository.MockCatalogOptions{
		Schedule: func() models.ScheduleSpec {
			return matcher.GenerateSchedule(rng)
		},
		Seed:            rng.Float64()*2 - 1,
		HoursResetRatio: *resetRatio,
		ZoneDir:         *zoneDir,
	})
	if err != nil {
		zapLogger.Fatal("Failed to rebuild mock catalog", zap.Error(err))
	}

	zapLogger.Info("Mock catalog ready",
		zap.Int64("rows", stats.Rows),
		zap.Int("schedules_generated", stats.SchedulesGenerated),
		zap.Int("zones_loaded", stats.ZonesLoaded),
		zap.Int64("seed", *seed))

	if !configs.NSQ.Enabled {
		return
	}

	producer, err := nsq.NewProducer(configs.NSQ.Address, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	defer producer.Stop()

	topic := configs.NSQ.Topic
	if topic == "" {
		topic = constants.TopicProviderCatalogChanged
	}
	if err := producer.Publish(topic, models.CatalogEvent{Action: "rebuilt"}); err != nil {
		zapLogger.Error("Failed to announce catalog rebuild", zap.Error(err))
	}
}
