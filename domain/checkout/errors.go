package checkout

import "errors"

var (
	// ErrStepBlocked The current step failed validation; field errors
	// carry the details.
	ErrStepBlocked = errors.New("checkout step validation failed")

	// ErrNotAtConfirmation Orders are placed from the confirmation step
	// only.
	ErrNotAtConfirmation = errors.New("order can only be placed at the confirmation step")

	// ErrSubmissionInFlight A second submit arrived while one was still
	// running.
	ErrSubmissionInFlight = errors.New("an order submission is already in progress")

	// ErrInvalidScreenshot The uploaded payment proof was rejected.
	ErrInvalidScreenshot = errors.New("invalid payment screenshot")

	// ErrInvalidPaymentMethod Unknown payment method value.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
