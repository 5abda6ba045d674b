package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/KishoreVB70/icp-marketplace/internal/config"
	domain "github.com/KishoreVB70/icp-marketplace/internal/domain/order"
	"github.com/KishoreVB70/icp-marketplace/internal/infrastructure/encoding/avro"
	"github.com/KishoreVB70/icp-marketplace/pkg/logger"
)

// OrderEventProducer publishes committed orders as Avro records. Publishing
// happens after the order commit; a failed publish never unwinds it.
type OrderEventProducer struct {
	client *kgo.Client
	codec  *avro.Codec
	topic  string
	log    logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderEventProducer, error) {
	codec, err := avro.NewCodec(avro.OrderEventSchema)
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderTopic),
	)

	return &OrderEventProducer{
		client: client,
		codec:  codec,
		topic:  cfg.OrderTopic,
		log:    log,
	}, nil
}

func (p *OrderEventProducer) PublishOrderCompleted(ctx context.Context, o *domain.Order) error {
	native, err := avro.ToOrderEventNative(o)
	if err != nil {
		return fmt.Errorf("map order event: %w", err)
	}

	payload, err := p.codec.EncodeNative(native)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *OrderEventProducer) Close(ctx context.Context) error {
	_ = ctx
	p.log.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
