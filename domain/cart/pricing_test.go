package cart

import (
	"testing"

	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/shared"
)

func cartWith(t *testing.T, prices map[string]int64, quantities map[string]int) []Line {
	t.Helper()
	c := New()
	for id, price := range prices {
		qty := quantities[id]
		if qty == 0 {
			qty = 1
		}
		if _, err := c.Add(catalog.Product{ID: id, Name: id, Price: shared.Rupees(price)}, qty); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	return c.Lines()
}

func TestFreeShippingAboveThreshold(t *testing.T) {
	rules := DefaultRules()

	lines := cartWith(t, map[string]int64{"p1": 501}, nil)
	for _, projection := range []Projection{CartView, CheckoutView} {
		totals := ComputeTotals(lines, projection, PaymentOnline, rules)
		if !totals.ShippingFee.IsZero() {
			t.Errorf("projection %d: shipping = %d, want 0 above threshold", projection, totals.ShippingFee.Amount())
		}
	}

	// Exactly at the threshold still pays shipping (strictly above is free).
	atThreshold := cartWith(t, map[string]int64{"p1": 500}, nil)
	cartTotals := ComputeTotals(atThreshold, CartView, PaymentOnline, rules)
	if got := cartTotals.ShippingFee.Amount(); got != 99 {
		t.Errorf("cart view shipping at threshold = %d, want 99", got)
	}
	checkoutTotals := ComputeTotals(atThreshold, CheckoutView, PaymentOnline, rules)
	if got := checkoutTotals.ShippingFee.Amount(); got != 50 {
		t.Errorf("checkout view shipping at threshold = %d, want 50", got)
	}
}

func TestCartViewOmitsTaxAndSurcharge(t *testing.T) {
	lines := cartWith(t, map[string]int64{"p1": 300}, nil)
	totals := ComputeTotals(lines, CartView, PaymentCOD, DefaultRules())

	if !totals.Tax.IsZero() || !totals.CODSurcharge.IsZero() {
		t.Errorf("cart view must not price tax (%d) or surcharge (%d)", totals.Tax.Amount(), totals.CODSurcharge.Amount())
	}
	if got := totals.Total.Amount(); got != 399 {
		t.Errorf("cart view total = %d, want 300+99=399", got)
	}
}

func TestCheckoutViewOnlinePayment(t *testing.T) {
	// The end-to-end pricing scenario: one item at 300, online payment.
	lines := cartWith(t, map[string]int64{"p1": 300}, nil)
	totals := ComputeTotals(lines, CheckoutView, PaymentOnline, DefaultRules())

	if got := totals.Subtotal.Amount(); got != 300 {
		t.Errorf("subtotal = %d, want 300", got)
	}
	if got := totals.ShippingFee.Amount(); got != 50 {
		t.Errorf("shipping = %d, want 50", got)
	}
	if got := totals.Tax.Amount(); got != 54 {
		t.Errorf("tax = %d, want round(300*0.18)=54", got)
	}
	if !totals.CODSurcharge.IsZero() {
		t.Errorf("online payment must not carry COD surcharge")
	}
	if got := totals.Total.Amount(); got != 404 {
		t.Errorf("total = %d, want 404", got)
	}
}

func TestCheckoutViewCODSurcharge(t *testing.T) {
	lines := cartWith(t, map[string]int64{"p1": 300}, nil)
	totals := ComputeTotals(lines, CheckoutView, PaymentCOD, DefaultRules())

	if got := totals.CODSurcharge.Amount(); got != 20 {
		t.Errorf("surcharge = %d, want 20", got)
	}
	if got := totals.Total.Amount(); got != 424 {
		t.Errorf("COD total = %d, want 404+20=424", got)
	}
}

func TestTotalsAcrossMultipleLines(t *testing.T) {
	lines := cartWith(t,
		map[string]int64{"p1": 120, "p2": 80},
		map[string]int{"p1": 2, "p2": 3},
	)
	totals := ComputeTotals(lines, CheckoutView, PaymentOnline, DefaultRules())

	if got := totals.Subtotal.Amount(); got != 480 {
		t.Errorf("subtotal = %d, want 480", got)
	}
	if got := totals.Tax.Amount(); got != 86 {
		t.Errorf("tax = %d, want round(480*0.18)=86", got)
	}
	if got := totals.Total.Amount(); got != 480+50+86 {
		t.Errorf("total = %d, want 616", got)
	}
}

func TestFreeShippingHelpers(t *testing.T) {
	rules := DefaultRules()

	remaining := RemainingForFreeShipping(shared.Rupees(350), rules)
	if got := remaining.Amount(); got != 150 {
		t.Errorf("remaining = %d, want 150", got)
	}
	if got := RemainingForFreeShipping(shared.Rupees(900), rules).Amount(); got != 0 {
		t.Errorf("remaining past threshold = %d, want 0", got)
	}

	if got := ShippingProgress(shared.Rupees(250), rules); got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
	if got := ShippingProgress(shared.Rupees(900), rules); got != 100 {
		t.Errorf("progress past threshold = %d, want 100", got)
	}
}
