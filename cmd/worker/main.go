package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/adapters/event"
	"github.com/JanviSingh1712/portfolio/adapters/persistence"
	analyticsUC "github.com/JanviSingh1712/portfolio/internal/application/usecase/analytics"
	"github.com/JanviSingh1712/portfolio/internal/config"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "worker"))
	defer appLogger.Sync()
	appLogger.Info("Starting portfolio view worker...")

	if len(cfg.Kafka.Brokers) == 0 || cfg.Redis.Addr == "" {
		appLogger.Fatal("Worker needs kafka.brokers and redis.addr", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Counter store
	redisClient, err := persistence.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	// Worker Use Case
	recordViewUseCase := analyticsUC.NewRecordViewUseCase(persistence.NewRedisViewCounter(redisClient), appLogger)

	// Kafka Consumer
	consumer, err := event.NewKafkaViewConsumer(cfg.Kafka.Brokers, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	if err := consumer.Run(ctx, recordViewUseCase.Execute); err != nil {
		appLogger.Error("Worker stopped with error", err)
	}
	appLogger.Info("Worker stopped")
}
