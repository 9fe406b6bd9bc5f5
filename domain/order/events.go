package order

import (
	"time"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/shared"
)

type OrderPlacedEvent struct {
	orderID    string
	total      shared.Money
	method     cart.PaymentMethod
	itemCount  int
	occurredOn time.Time
}

func NewOrderPlacedEvent(orderID string, total shared.Money, method cart.PaymentMethod, itemCount int) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		orderID:    orderID,
		total:      total,
		method:     method,
		itemCount:  itemCount,
		occurredOn: time.Now(),
	}
}

// EventPayload The event's data as published on the wire.
func (e *OrderPlacedEvent) EventPayload() map[string]any {
	return map[string]any{
		"order_id":       e.orderID,
		"total":          e.total.Amount(),
		"currency":       e.total.Currency(),
		"payment_method": string(e.method),
		"item_count":     e.itemCount,
	}
}

func (e *OrderPlacedEvent) EventName() string          { return "order.placed" }
func (e *OrderPlacedEvent) OccurredOn() time.Time      { return e.occurredOn }
func (e *OrderPlacedEvent) GetAggregateID() string     { return e.orderID }
func (e *OrderPlacedEvent) OrderID() string            { return e.orderID }
func (e *OrderPlacedEvent) Total() shared.Money        { return e.total }
func (e *OrderPlacedEvent) Method() cart.PaymentMethod { return e.method }
func (e *OrderPlacedEvent) ItemCount() int             { return e.itemCount }
