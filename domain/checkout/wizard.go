/*
Package checkout Checkout wizard state machine.

The wizard is a linear four-step form: Review, Shipping, Payment,
Confirmation. Moving forward is gated on the current step's validation;
moving back is always allowed and never discards entered data. The wizard
lives next to its session's cart and is just as ephemeral.
*/
package checkout

import (
	"strings"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/pkg/validate"
)

// Step Wizard position.
type Step int

const (
	StepReview       Step = 1
	StepShipping     Step = 2
	StepPayment      Step = 3
	StepConfirmation Step = 4
)

func (s Step) String() string {
	switch s {
	case StepReview:
		return "Review Order"
	case StepShipping:
		return "Shipping Info"
	case StepPayment:
		return "Payment"
	case StepConfirmation:
		return "Confirmation"
	default:
		return "Unknown"
	}
}

// ShippingInfo Customer identity and delivery address.
type ShippingInfo struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Address             string
	City                string
	State               string
	ZipCode             string
	Country             string
	SpecialInstructions string
}

// PaymentInfo Payment method selection plus the online-payment proof.
type PaymentInfo struct {
	Method        cart.PaymentMethod
	TransactionID string
	Screenshot    *Screenshot
}

// Wizard The checkout state machine for one session.
type Wizard struct {
	step       Step
	shipping   ShippingInfo
	payment    PaymentInfo
	errors     map[string]string
	submitting bool
}

// NewWizard starts at the review step with the store's defaults: country
// India, online payment preselected.
func NewWizard() *Wizard {
	return &Wizard{
		step:     StepReview,
		shipping: ShippingInfo{Country: "India"},
		payment:  PaymentInfo{Method: cart.PaymentOnline},
		errors:   make(map[string]string),
	}
}

// Step Current position.
func (w *Wizard) Step() Step { return w.step }

// Shipping Snapshot of the shipping form.
func (w *Wizard) Shipping() ShippingInfo { return w.shipping }

// Payment Snapshot of the payment form.
func (w *Wizard) Payment() PaymentInfo { return w.payment }

// Errors Copy of the current per-field errors.
func (w *Wizard) Errors() map[string]string {
	out := make(map[string]string, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Next advances one step if the current step validates. On failure the
// per-field errors are recorded, the step does not change, and
// ErrStepBlocked is returned.
func (w *Wizard) Next() error {
	errs := w.validateStep(w.step)
	w.errors = errs
	if len(errs) > 0 {
		return ErrStepBlocked
	}
	if w.step < StepConfirmation {
		w.step++
	}
	return nil
}

// Prev moves back one step. Entered data is kept.
func (w *Wizard) Prev() {
	if w.step > StepReview {
		w.step--
	}
}

// AllowContinue mirrors the continue affordance: on the payment step with
// online payment selected, both a screenshot and a transaction id must be
// present before the button enables.
func (w *Wizard) AllowContinue() bool {
	if w.step != StepPayment || w.payment.Method != cart.PaymentOnline {
		return true
	}
	return w.payment.Screenshot != nil && strings.TrimSpace(w.payment.TransactionID) != ""
}

// validateStep Review and confirmation have no validators. Shipping
// requires every address field; payment requires proof only for online
// payments.
func (w *Wizard) validateStep(step Step) map[string]string {
	errs := make(map[string]string)

	if step == StepShipping {
		checks := []struct {
			field, value, label string
		}{
			{"firstName", w.shipping.FirstName, "First name"},
			{"lastName", w.shipping.LastName, "Last name"},
			{"email", w.shipping.Email, "Email"},
			{"phone", w.shipping.Phone, "Phone number"},
			{"address", w.shipping.Address, "Address"},
			{"city", w.shipping.City, "City"},
			{"state", w.shipping.State, "State"},
			{"zipCode", w.shipping.ZipCode, "ZIP code"},
		}
		for _, c := range checks {
			if msg := validate.Required(c.value, c.label); msg != "" {
				errs[c.field] = msg
			}
		}
	}

	if step == StepPayment && w.payment.Method == cart.PaymentOnline {
		if w.payment.Screenshot == nil {
			errs["transactionScreenshot"] = "Payment screenshot is required"
		}
		if strings.TrimSpace(w.payment.TransactionID) == "" {
			errs["transactionId"] = "Transaction ID is required"
		} else if len(w.payment.TransactionID) < 8 {
			errs["transactionId"] = "Transaction ID must be at least 8 characters"
		}
	}

	return errs
}

// SetShippingField updates one shipping field by its form name and clears
// that field's error, matching the as-you-type behavior of the form.
func (w *Wizard) SetShippingField(field, value string) {
	switch field {
	case "firstName":
		w.shipping.FirstName = value
	case "lastName":
		w.shipping.LastName = value
	case "email":
		w.shipping.Email = value
	case "phone":
		w.shipping.Phone = value
	case "address":
		w.shipping.Address = value
	case "city":
		w.shipping.City = value
	case "state":
		w.shipping.State = value
	case "zipCode":
		w.shipping.ZipCode = value
	case "country":
		w.shipping.Country = value
	case "specialInstructions":
		w.shipping.SpecialInstructions = value
	default:
		return
	}
	delete(w.errors, field)
}

// SetPaymentMethod selects the payment method and clears payment errors
// that no longer apply.
func (w *Wizard) SetPaymentMethod(method cart.PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	w.payment.Method = method
	if method == cart.PaymentCOD {
		delete(w.errors, "transactionScreenshot")
		delete(w.errors, "transactionId")
	}
	return nil
}

// SetTransactionID records the UTR/reference number and clears its error.
func (w *Wizard) SetTransactionID(id string) {
	w.payment.TransactionID = id
	delete(w.errors, "transactionId")
}

// AttachScreenshot stores the payment proof if it satisfies the policy.
// A rejected file sets a field error and nothing is stored.
func (w *Wizard) AttachScreenshot(s Screenshot, policy ScreenshotPolicy) error {
	if msg := policy.Check(s); msg != "" {
		w.errors["transactionScreenshot"] = msg
		return ErrInvalidScreenshot
	}
	w.payment.Screenshot = &s
	delete(w.errors, "transactionScreenshot")
	return nil
}

// BeginSubmit acquires the submit latch. Placing an order is only possible
// at the confirmation step, and a second submission while one is in flight
// is refused rather than queued.
func (w *Wizard) BeginSubmit() error {
	if w.step != StepConfirmation {
		return ErrNotAtConfirmation
	}
	if w.submitting {
		return ErrSubmissionInFlight
	}
	w.submitting = true
	return nil
}

// EndSubmit releases the submit latch. Called on both success and failure;
// failure leaves every other piece of wizard state untouched so the
// customer can simply retry.
func (w *Wizard) EndSubmit() {
	w.submitting = false
}

// Submitting reports whether an order submission is in flight.
func (w *Wizard) Submitting() bool { return w.submitting }
