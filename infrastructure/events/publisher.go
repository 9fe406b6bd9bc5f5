// Package events Domain event publishers: a logging publisher for
// development and a Kafka publisher for deployments with a broker.
package events

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/krishivishwa/storefront/domain/shared"
	"github.com/krishivishwa/storefront/pkg/logger"
)

// Envelope The wire shape of a published event.
type Envelope struct {
	EventName   string          `json:"event_name"`
	AggregateID string          `json:"aggregate_id"`
	OccurredOn  time.Time       `json:"occurred_on"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// payloader Events expose their data through an optional interface so
// the envelope never reflects over unexported fields.
type payloader interface {
	EventPayload() map[string]any
}

func toEnvelope(e shared.DomainEvent) Envelope {
	env := Envelope{
		EventName:   e.EventName(),
		AggregateID: e.GetAggregateID(),
		OccurredOn:  e.OccurredOn(),
	}
	if p, ok := e.(payloader); ok {
		env.Payload, _ = json.Marshal(p.EventPayload())
	}
	return env
}

// LoggingPublisher writes events to the application log. The development
// default.
type LoggingPublisher struct{}

// NewLoggingPublisher Create a logging publisher.
func NewLoggingPublisher() *LoggingPublisher {
	return &LoggingPublisher{}
}

// Publish logs each event.
func (p *LoggingPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, e := range events {
		logger.Info("domain event published",
			zap.String("event_name", e.EventName()),
			zap.String("aggregate_id", e.GetAggregateID()),
			zap.Time("occurred_on", e.OccurredOn()))
	}
	return nil
}
