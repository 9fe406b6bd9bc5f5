/*
Package cart Shopping cart aggregate and pricing rules.

The cart is the consistency boundary for line items: a product appears in
at most one line, quantities never drop below 1 while a line exists, and
all mutation goes through the aggregate's methods. Carts are ephemeral,
session-scoped state; nothing here persists.
*/
package cart

import (
	"time"

	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/shared"
)

// Line One product-and-quantity pair within a cart. The product fields are
// snapshotted at add time so a cart renders without re-fetching the catalog.
type Line struct {
	productID     string
	name          string
	category      string
	image         string
	unitPrice     shared.Money
	originalPrice shared.Money
	rating        float64
	quantity      int
}

func (l Line) ProductID() string            { return l.productID }
func (l Line) Name() string                 { return l.name }
func (l Line) Category() string             { return l.category }
func (l Line) Image() string                { return l.image }
func (l Line) UnitPrice() shared.Money      { return l.unitPrice }
func (l Line) OriginalPrice() shared.Money  { return l.originalPrice }
func (l Line) Rating() float64              { return l.rating }
func (l Line) Quantity() int                { return l.quantity }

// Subtotal Line total: unit price times quantity.
func (l Line) Subtotal() shared.Money {
	total, _ := l.unitPrice.MultiplyInt(l.quantity)
	return total
}

// Cart Shopping cart aggregate root. Lines keep insertion order.
type Cart struct {
	lines     []Line
	updatedAt time.Time
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{lines: make([]Line, 0)}
}

// Add puts quantity units of product in the cart. An existing line for the
// product is incremented rather than duplicated. Returns the resulting
// quantity for that product.
func (c *Cart) Add(product catalog.Product, quantity int) (int, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}

	for i := range c.lines {
		if c.lines[i].productID == product.ID {
			c.lines[i].quantity += quantity
			c.updatedAt = time.Now()
			return c.lines[i].quantity, nil
		}
	}

	c.lines = append(c.lines, Line{
		productID:     product.ID,
		name:          product.Name,
		category:      product.Category,
		image:         product.Image,
		unitPrice:     product.Price,
		originalPrice: product.OriginalPrice,
		rating:        product.Rating,
		quantity:      quantity,
	})
	c.updatedAt = time.Now()
	return quantity, nil
}

// UpdateQuantity sets a line's quantity exactly. A quantity below 1 is a
// no-op: the decrement-below-one action is a disabled affordance, not a
// removal path. Removal is explicit via Remove.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	for i := range c.lines {
		if c.lines[i].productID == productID {
			c.lines[i].quantity = quantity
			c.updatedAt = time.Now()
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove deletes the line for productID. Returns the removed line; ok is
// false when no such line existed (and the cart is unchanged).
func (c *Cart) Remove(productID string) (Line, bool) {
	for i, line := range c.lines {
		if line.productID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.updatedAt = time.Now()
			return line, true
		}
	}
	return Line{}, false
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
	c.updatedAt = time.Now()
}

// Lines Return a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Len Number of distinct product lines.
func (c *Cart) Len() int { return len(c.lines) }

// ItemCount Total units across all lines; the navbar badge number.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.quantity
	}
	return count
}

// UpdatedAt Time of the last mutation.
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }
