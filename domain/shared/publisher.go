package shared

import "context"

// EventPublisher Outbound port for domain events. Implementations log
// them or hand them to a broker; callers never block order placement on
// delivery.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}
