package kafka

import (
	"context"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/KishoreVB70/icp-marketplace/internal/config"
	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/order"
	"github.com/KishoreVB70/icp-marketplace/internal/infrastructure/encoding/avro"
	"github.com/KishoreVB70/icp-marketplace/pkg/logger"
)

// OrderArchiver receives every consumed order event.
type OrderArchiver interface {
	Archive(ctx context.Context, o *domain.Order) error
}

// OrderEventConsumer reads committed-order events and hands them to the
// archiver. Runs until the context is cancelled or a handler fails.
type OrderEventConsumer struct {
	reader   *kafkago.Reader
	codec    *avro.Codec
	archiver OrderArchiver
	log      logger.Logger
}

func NewOrderEventConsumer(cfg config.KafkaConfig, archiver OrderArchiver, log logger.Logger) (*OrderEventConsumer, error) {
	codec, err := avro.NewCodec(avro.OrderEventSchema)
	if err != nil {
		return nil, err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &OrderEventConsumer{
		reader:   reader,
		codec:    codec,
		archiver: archiver,
		log:      log,
	}, nil
}

func (c *OrderEventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		record, err := c.codec.DecodeNative(msg.Value)
		if err != nil {
			// A malformed record is skipped, not allowed to wedge the group.
			c.log.Warn("skipping malformed order event", logger.Error(err))
			continue
		}

		o, err := avro.FromOrderEventNative(record)
		if err != nil {
			c.log.Warn("skipping invalid order event", logger.Error(err))
			continue
		}

		if err := c.archiver.Archive(ctx, o); err != nil {
			return fmt.Errorf("archive order %s: %w", o.ID, err)
		}

		c.log.Debug("archived order event", logger.String("order_id", o.ID))
	}
}

func (c *OrderEventConsumer) Close() {
	_ = c.reader.Close()
}
