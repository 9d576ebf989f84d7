package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/vitrine/stock-reserve/internal/core/domain"
)

// KafkaPublisher emits stock events for the inventory source. Messages are
// keyed by variant so per-variant ordering survives partitioning.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (p *KafkaPublisher) PublishStockCommitted(ctx context.Context, event domain.StockCommitted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal stock committed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.VariantID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write stock committed event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
