package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/krishivishwa/storefront/domain/shared"
)

// TopicOrderCreated The topic order events land on.
const TopicOrderCreated = "order-created"

// KafkaPublisher publishes domain events to a Kafka topic, keyed by
// aggregate id so one order's events stay in one partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher Create a publisher writing to the given brokers and
// topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish writes each event as a JSON envelope.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	messages := make([]kafka.Message, len(events))
	for i, e := range events {
		value, err := json.Marshal(toEnvelope(e))
		if err != nil {
			return err
		}
		messages[i] = kafka.Message{
			Key:   []byte(e.GetAggregateID()),
			Value: value,
			Time:  e.OccurredOn(),
		}
	}
	return p.writer.WriteMessages(ctx, messages...)
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
