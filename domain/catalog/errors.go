package catalog

import "errors"

var (
	// ErrProductNotFound No product with the requested id.
	ErrProductNotFound = errors.New("product not found")
)
