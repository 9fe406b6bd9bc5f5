package cart

import "errors"

var (
	// ErrCartEmpty Checkout requires at least one line.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrLineNotFound No line for the given product id.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrInvalidQuantity Quantities start at 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
