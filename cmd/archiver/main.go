package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/KishoreVB70/icp-marketplace/internal/config"
	kafkainfra "github.com/KishoreVB70/icp-marketplace/internal/infrastructure/messaging/kafka"
	"github.com/KishoreVB70/icp-marketplace/internal/infrastructure/persistence/postgres"
	"github.com/KishoreVB70/icp-marketplace/pkg/logger"
)

// The archiver tails the order-event topic and keeps a durable copy of every
// committed order in postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	if !cfg.Kafka.EventsEnabled() {
		appLog.Fatal("KAFKA_BOOTSTRAP_SERVERS is empty, the archiver needs brokers")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		appLog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	archive := postgres.NewOrderArchiveRepository(pool)

	consumer, err := kafkainfra.NewOrderEventConsumer(cfg.Kafka, archive, appLog)
	if err != nil {
		appLog.Fatal("init kafka consumer failed", logger.Error(err))
	}
	defer consumer.Close()

	appLog.Info("archiver consuming order events",
		logger.Any("brokers", cfg.Kafka.Brokers),
		logger.String("topic", cfg.Kafka.OrderTopic),
		logger.String("group", cfg.Kafka.ConsumerGroup),
	)

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLog.Fatal("consumer stopped", logger.Error(err))
	}

	appLog.Info("archiver shut down")
}
