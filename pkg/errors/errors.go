/*
Package errors defines the application error model.

Domain packages return sentinel errors; this package wraps them into
AppError values carrying a stable error code. The API layer owns the
mapping from codes to HTTP statuses.
*/
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode Stable machine-readable error code
type ErrorCode string

const (
	// Generic codes
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// Catalog
	CodeProductNotFound ErrorCode = "PRODUCT_NOT_FOUND"

	// Cart
	CodeCartEmpty       ErrorCode = "CART_EMPTY"
	CodeCartLineMissing ErrorCode = "CART_LINE_MISSING"
	CodeInvalidQuantity ErrorCode = "INVALID_QUANTITY"

	// Checkout
	CodeStepBlocked       ErrorCode = "CHECKOUT_STEP_BLOCKED"
	CodeOrderInFlight     ErrorCode = "ORDER_IN_FLIGHT"
	CodeInvalidScreenshot ErrorCode = "INVALID_SCREENSHOT"

	// Orders
	CodeOrderNotFound ErrorCode = "ORDER_NOT_FOUND"

	// Content
	CodeStoryNotFound     ErrorCode = "STORY_NOT_FOUND"
	CodeAlreadySubscribed ErrorCode = "ALREADY_SUBSCRIBED"
)

// AppError Application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	// Details carries per-field validation errors when present.
	Details map[string]string `json:"details,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New Create a new error
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap Wrap an underlying error
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common constructors

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Business constructors

func ProductNotFound() *AppError {
	return New(CodeProductNotFound, "product not found")
}

func CartEmpty() *AppError {
	return New(CodeCartEmpty, "cart is empty")
}

func OrderNotFound() *AppError {
	return New(CodeOrderNotFound, "order not found")
}

func StepBlocked(message string) *AppError {
	return New(CodeStepBlocked, message)
}

func OrderInFlight() *AppError {
	return New(CodeOrderInFlight, "an order submission is already in progress")
}

func AlreadySubscribed() *AppError {
	return New(CodeAlreadySubscribed, "email is already subscribed")
}

// Is Check whether err carries the given code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromDomainError Map a domain sentinel error to an AppError.
// Matching is by message so domain packages stay free of this package.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch err.Error() {
	case "product not found":
		return ProductNotFound()
	case "cart is empty":
		return CartEmpty()
	case "cart line not found":
		return New(CodeCartLineMissing, "cart line not found")
	case "quantity must be at least 1":
		return New(CodeInvalidQuantity, "quantity must be at least 1")
	case "order not found":
		return OrderNotFound()
	case "story not found":
		return New(CodeStoryNotFound, "story not found")
	case "email is already subscribed":
		return AlreadySubscribed()
	case "an order submission is already in progress":
		return OrderInFlight()
	case "checkout step validation failed":
		return StepBlocked("checkout step validation failed")
	case "order can only be placed at the confirmation step":
		return StepBlocked("order can only be placed at the confirmation step")
	case "invalid payment screenshot":
		return New(CodeInvalidScreenshot, "invalid payment screenshot")
	case "invalid payment method":
		return BadRequest("invalid payment method")
	case "invalid order status change":
		return Conflict("invalid order status change")
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
