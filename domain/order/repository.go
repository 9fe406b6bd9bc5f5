package order

import "context"

// Repository Order persistence.
type Repository interface {
	// Save persists a new order. Orders are written once; status changes
	// go through Update.
	Save(ctx context.Context, o *Order) error

	// FindByID returns the order or ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindAll returns all orders, newest first.
	FindAll(ctx context.Context) ([]*Order, error)

	// UpdateStatus persists a status transition already applied to the
	// aggregate.
	UpdateStatus(ctx context.Context, o *Order) error
}
