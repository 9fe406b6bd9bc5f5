package checkout

import (
	"time"

	cartapp "github.com/krishivishwa/storefront/application/cart"
)

// UpdateShippingRequest Partial shipping-form update keyed by form field
// name.
type UpdateShippingRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// UpdatePaymentRequest Payment form update. A nil TransactionID leaves the
// stored value alone; an empty string clears it.
type UpdatePaymentRequest struct {
	Method        string  `json:"method"`
	TransactionID *string `json:"transaction_id"`
}

// ShippingResponse The shipping form as currently filled.
type ShippingResponse struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zip_code"`
	Country             string `json:"country"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// PaymentResponse The payment form as currently filled. The screenshot
// bytes stay server-side; the response only says one is attached.
type PaymentResponse struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id,omitempty"`
	HasScreenshot bool   `json:"has_screenshot"`
}

// WizardResponse Full wizard state for rendering the checkout page.
type WizardResponse struct {
	Step          int                   `json:"step"`
	StepName      string                `json:"step_name"`
	Shipping      ShippingResponse      `json:"shipping"`
	Payment       PaymentResponse       `json:"payment"`
	Errors        map[string]string     `json:"errors"`
	AllowContinue bool                  `json:"allow_continue"`
	Cart          *cartapp.CartResponse `json:"cart"`
}

// OrderItemResponse One line of a placed order.
type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
	Image       string `json:"image,omitempty"`
}

// OrderResponse A placed order as served to the confirmation page.
type OrderResponse struct {
	ID            string                 `json:"id"`
	Items         []OrderItemResponse    `json:"items"`
	Totals        cartapp.TotalsResponse `json:"totals"`
	Customer      ShippingResponse       `json:"customer"`
	PaymentMethod string                 `json:"payment_method"`
	TransactionID string                 `json:"transaction_id,omitempty"`
	HasScreenshot bool                   `json:"has_screenshot"`
	Status        string                 `json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
}
