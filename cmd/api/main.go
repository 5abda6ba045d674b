package main

import (
	"context"
	"log"

	orderapp "github.com/KishoreVB70/icp-marketplace/internal/application/order"
	productapp "github.com/KishoreVB70/icp-marketplace/internal/application/product"
	"github.com/KishoreVB70/icp-marketplace/internal/config"
	ginserver "github.com/KishoreVB70/icp-marketplace/internal/infrastructure/http/gin"
	ledgerclient "github.com/KishoreVB70/icp-marketplace/internal/infrastructure/http/ledger"
	kafkainfra "github.com/KishoreVB70/icp-marketplace/internal/infrastructure/messaging/kafka"
	"github.com/KishoreVB70/icp-marketplace/internal/infrastructure/persistence/memory"
	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/handler"
	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/router"
	"github.com/KishoreVB70/icp-marketplace/pkg/logger"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The stores live here and are passed down by reference.
	productRepo := memory.NewProductRepository()
	orderRepo := memory.NewOrderRepository()

	transferClient := ledgerclient.NewClient(cfg.Ledger, appLog)

	var publisher orderapp.Publisher
	if cfg.Kafka.EventsEnabled() {
		producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka, appLog)
		if err != nil {
			appLog.Fatal("init kafka producer failed", logger.Error(err))
		}
		defer producer.Close(ctx)
		publisher = producer
	} else {
		appLog.Info("kafka brokers not configured, order events disabled")
	}

	productService := productapp.NewService(productRepo)
	orderService := orderapp.NewService(productRepo, orderRepo, transferClient, publisher, appLog)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(
		engine,
		handler.NewProductHandler(productService),
		handler.NewOrderHandler(orderService),
		handler.NewAddressHandler(),
	)

	appLog.Info("starting marketplace api",
		logger.String("addr", cfg.Server.Address()),
		logger.String("ledger", cfg.Ledger.BaseURL),
	)

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		appLog.Fatal("server run failed", logger.Error(err))
	}
}
