/*
Package order Placed-order aggregate.

An order is the immutable record cut from a session's cart and checkout
wizard at submission time. Unlike the cart it snapshots everything it
needs (line items, totals, customer, payment proof) so later catalog or
pricing changes never rewrite history.
*/
package order

import (
	"fmt"
	"time"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/shared"
)

// Status Order lifecycle state. Every new order starts pending and is
// confirmed or cancelled by the back office later.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Item A purchased line, snapshotted from the cart at submission.
type Item struct {
	productID   string
	productName string
	unitPrice   shared.Money
	quantity    int
	subtotal    shared.Money
	image       string
}

func (i Item) ProductID() string       { return i.productID }
func (i Item) ProductName() string     { return i.productName }
func (i Item) UnitPrice() shared.Money { return i.unitPrice }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) Subtotal() shared.Money  { return i.subtotal }
func (i Item) Image() string           { return i.image }

// PaymentData What was recorded about the payment. The screenshot bytes
// live in the upload store; the order only remembers that proof exists.
type PaymentData struct {
	Method        cart.PaymentMethod
	TransactionID string
	HasScreenshot bool
	ScreenshotRef string
}

// Order The aggregate root.
type Order struct {
	id        string
	items     []Item
	totals    cart.Totals
	customer  checkout.ShippingInfo
	payment   PaymentData
	status    Status
	createdAt time.Time

	events []shared.DomainEvent
}

// NewID derives the customer-facing order id from the submission instant.
func NewID(at time.Time) string {
	return fmt.Sprintf("ORD-%d", at.UnixMilli())
}

// Place cuts an order from the cart and wizard state. The cart must not be
// empty and the totals are recomputed here rather than trusted from the
// caller.
func Place(c *cart.Cart, shipping checkout.ShippingInfo, payment PaymentData, rules cart.Rules, now time.Time) (*Order, error) {
	if c.IsEmpty() {
		return nil, cart.ErrCartEmpty
	}
	if !payment.Method.Valid() {
		return nil, checkout.ErrInvalidPaymentMethod
	}

	lines := c.Lines()
	items := make([]Item, len(lines))
	for i, l := range lines {
		items[i] = Item{
			productID:   l.ProductID(),
			productName: l.Name(),
			unitPrice:   l.UnitPrice(),
			quantity:    l.Quantity(),
			subtotal:    l.Subtotal(),
			image:       l.Image(),
		}
	}

	o := &Order{
		id:        NewID(now),
		items:     items,
		totals:    cart.ComputeTotals(lines, cart.CheckoutView, payment.Method, rules),
		customer:  shipping,
		payment:   payment,
		status:    StatusPending,
		createdAt: now,
	}
	o.recordEvent(NewOrderPlacedEvent(o.id, o.totals.Total, payment.Method, len(items)))
	return o, nil
}

// Reconstitute rebuilds an order from persistence without raising events.
func Reconstitute(id string, items []ItemRecord, totals cart.Totals, customer checkout.ShippingInfo, payment PaymentData, status Status, createdAt time.Time) *Order {
	rebuilt := make([]Item, len(items))
	for i, r := range items {
		rebuilt[i] = Item{
			productID:   r.ProductID,
			productName: r.ProductName,
			unitPrice:   r.UnitPrice,
			quantity:    r.Quantity,
			subtotal:    r.Subtotal,
			image:       r.Image,
		}
	}
	return &Order{
		id:        id,
		items:     rebuilt,
		totals:    totals,
		customer:  customer,
		payment:   payment,
		status:    status,
		createdAt: createdAt,
	}
}

// ItemRecord Flat item shape used by repositories to rebuild the aggregate.
type ItemRecord struct {
	ProductID   string
	ProductName string
	UnitPrice   shared.Money
	Quantity    int
	Subtotal    shared.Money
	Image       string
}

func (o *Order) ID() string                      { return o.id }
func (o *Order) Totals() cart.Totals             { return o.totals }
func (o *Order) Customer() checkout.ShippingInfo { return o.customer }
func (o *Order) Payment() PaymentData            { return o.payment }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }

// Items Copy of the line items.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Confirm moves a pending order to confirmed.
func (o *Order) Confirm() error {
	if o.status != StatusPending {
		return ErrInvalidStatusChange
	}
	o.status = StatusConfirmed
	return nil
}

// Cancel cancels an order that has not shipped yet.
func (o *Order) Cancel() error {
	if o.status == StatusShipped || o.status == StatusDelivered || o.status == StatusCancelled {
		return ErrInvalidStatusChange
	}
	o.status = StatusCancelled
	return nil
}

func (o *Order) recordEvent(e shared.DomainEvent) {
	o.events = append(o.events, e)
}

// PullEvents returns and clears the recorded domain events.
func (o *Order) PullEvents() []shared.DomainEvent {
	out := o.events
	o.events = nil
	return out
}
