package cart

import "github.com/krishivishwa/storefront/domain/shared"

// PaymentMethod How the customer pays for an order.
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCOD    PaymentMethod = "cod"
)

// Valid reports whether the method is one the store accepts.
func (m PaymentMethod) Valid() bool {
	return m == PaymentOnline || m == PaymentCOD
}

// Projection Which view of the cart is being priced. The cart page and the
// checkout wizard are different projections of the same cart: the cart page
// shows subtotal plus shipping only, the checkout wizard adds GST and the
// COD surcharge. The two projections also inherited different flat shipping
// fees (99 on the cart page, 50 in checkout); the checkout fee is the one
// that reaches order payloads, and the mismatch is kept visible here rather
// than silently merged.
type Projection int

const (
	CartView Projection = iota
	CheckoutView
)

// Rules Pricing constants. Amounts in whole rupees.
type Rules struct {
	FreeShippingThreshold int64
	CartShippingFee       int64
	CheckoutShippingFee   int64
	TaxRatePercent        int64
	CODSurcharge          int64
}

// DefaultRules The store's standard pricing rules.
func DefaultRules() Rules {
	return Rules{
		FreeShippingThreshold: 500,
		CartShippingFee:       99,
		CheckoutShippingFee:   50,
		TaxRatePercent:        18,
		CODSurcharge:          20,
	}
}

// Totals Full pricing breakdown for a cart.
type Totals struct {
	Subtotal     shared.Money
	ShippingFee  shared.Money
	Tax          shared.Money
	CODSurcharge shared.Money
	Total        shared.Money
}

// ComputeTotals prices the given lines under a projection. Pure function.
//
// Shipping is free strictly above the threshold. Tax (GST, half-up rounded)
// and the COD surcharge apply only to the checkout projection.
func ComputeTotals(lines []Line, projection Projection, method PaymentMethod, rules Rules) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPrice().Amount() * int64(l.Quantity())
	}

	var shipping int64
	if subtotal <= rules.FreeShippingThreshold {
		if projection == CheckoutView {
			shipping = rules.CheckoutShippingFee
		} else {
			shipping = rules.CartShippingFee
		}
	}

	var tax, surcharge int64
	if projection == CheckoutView {
		tax = shared.Rupees(subtotal).Percent(rules.TaxRatePercent).Amount()
		if method == PaymentCOD {
			surcharge = rules.CODSurcharge
		}
	}

	return Totals{
		Subtotal:     shared.Rupees(subtotal),
		ShippingFee:  shared.Rupees(shipping),
		Tax:          shared.Rupees(tax),
		CODSurcharge: shared.Rupees(surcharge),
		Total:        shared.Rupees(subtotal + shipping + tax + surcharge),
	}
}

// RemainingForFreeShipping How much more must be added to the cart before
// shipping becomes free; 0 once the threshold is crossed.
func RemainingForFreeShipping(subtotal shared.Money, rules Rules) shared.Money {
	remaining := rules.FreeShippingThreshold - subtotal.Amount()
	if remaining < 0 {
		remaining = 0
	}
	return shared.Rupees(remaining)
}

// ShippingProgress Percentage of the free-shipping threshold reached,
// capped at 100. Drives the cart page progress bar.
func ShippingProgress(subtotal shared.Money, rules Rules) int {
	if rules.FreeShippingThreshold <= 0 {
		return 100
	}
	progress := subtotal.Amount() * 100 / rules.FreeShippingThreshold
	if progress > 100 {
		progress = 100
	}
	return int(progress)
}
