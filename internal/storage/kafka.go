package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"foodhub/internal/domain"
)

// KafkaPublisher mirrors order-status events onto a Kafka topic so
// other systems can follow order progress without holding an open
// connection to this service.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
