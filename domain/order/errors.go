package order

import "errors"

var (
	// ErrOrderNotFound No order with the given id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatusChange The requested transition is not allowed from
	// the order's current status.
	ErrInvalidStatusChange = errors.New("invalid order status change")
)
