package cart

import "github.com/krishivishwa/storefront/domain/cart"

func toLineResponses(lines []cart.Line) []LineResponse {
	out := make([]LineResponse, len(lines))
	for i, l := range lines {
		out[i] = LineResponse{
			ProductID:     l.ProductID(),
			Name:          l.Name(),
			Category:      l.Category(),
			Image:         l.Image(),
			UnitPrice:     l.UnitPrice().Amount(),
			OriginalPrice: l.OriginalPrice().Amount(),
			Rating:        l.Rating(),
			Quantity:      l.Quantity(),
			Subtotal:      l.Subtotal().Amount(),
		}
	}
	return out
}

func toTotalsResponse(t cart.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:     t.Subtotal.Amount(),
		ShippingFee:  t.ShippingFee.Amount(),
		Tax:          t.Tax.Amount(),
		CODSurcharge: t.CODSurcharge.Amount(),
		Total:        t.Total.Amount(),
	}
}

func toCartResponse(c *cart.Cart, projection cart.Projection, rules cart.Rules) *CartResponse {
	return Snapshot(c, projection, cart.PaymentOnline, rules)
}

// Snapshot builds the cart payload for any projection and payment method.
// The checkout service uses it to price the cart with the selected method.
func Snapshot(c *cart.Cart, projection cart.Projection, method cart.PaymentMethod, rules cart.Rules) *CartResponse {
	lines := c.Lines()
	totals := cart.ComputeTotals(lines, projection, method, rules)
	return &CartResponse{
		Lines:                    toLineResponses(lines),
		ItemCount:                c.ItemCount(),
		Totals:                   toTotalsResponse(totals),
		FreeShipping:             totals.ShippingFee.IsZero() && !c.IsEmpty(),
		RemainingForFreeShipping: cart.RemainingForFreeShipping(totals.Subtotal, rules).Amount(),
		ShippingProgress:         cart.ShippingProgress(totals.Subtotal, rules),
	}
}
