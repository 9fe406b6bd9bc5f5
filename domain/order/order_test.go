package order

import (
	"errors"
	"testing"
	"time"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/shared"
)

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	_, err := c.Add(catalog.Product{
		ID: "1", Name: "Bio Boost Granules", Price: shared.Rupees(300), Category: "fertilizers",
	}, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	return c
}

func testShipping() checkout.ShippingInfo {
	return checkout.ShippingInfo{
		FirstName: "Asha", LastName: "Rao", Email: "asha@example.com",
		Phone: "9876543210", Address: "14 MG Road", City: "Pune",
		State: "Maharashtra", ZipCode: "411001", Country: "India",
	}
}

func TestPlace_SnapshotsCartAndTotals(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	o, err := Place(filledCart(t), testShipping(), PaymentData{
		Method: cart.PaymentOnline, TransactionID: "UTR12345678", HasScreenshot: true,
	}, cart.DefaultRules(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ORD-" + "1741608000000"
	if o.ID() != want {
		t.Errorf("id = %q, want %q", o.ID(), want)
	}
	if o.Status() != StatusPending {
		t.Errorf("status = %q, want pending", o.Status())
	}
	if len(o.Items()) != 1 || o.Items()[0].ProductName() != "Bio Boost Granules" {
		t.Errorf("items not snapshotted: %+v", o.Items())
	}
	// 300 subtotal, 50 checkout shipping, 54 GST, no surcharge online.
	if got := o.Totals().Total; !got.Equals(shared.Rupees(404)) {
		t.Errorf("total = %v, want 404", got)
	}
}

func TestPlace_CODAddsSurcharge(t *testing.T) {
	o, err := Place(filledCart(t), testShipping(), PaymentData{Method: cart.PaymentCOD}, cart.DefaultRules(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := o.Totals().Total; !got.Equals(shared.Rupees(424)) {
		t.Errorf("total = %v, want 424", got)
	}
}

func TestPlace_RejectsEmptyCart(t *testing.T) {
	_, err := Place(cart.New(), testShipping(), PaymentData{Method: cart.PaymentOnline}, cart.DefaultRules(), time.Now())
	if !errors.Is(err, cart.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestPlace_RecordsPlacedEvent(t *testing.T) {
	o, err := Place(filledCart(t), testShipping(), PaymentData{Method: cart.PaymentCOD}, cart.DefaultRules(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := o.PullEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	placed, ok := events[0].(*OrderPlacedEvent)
	if !ok {
		t.Fatalf("unexpected event type %T", events[0])
	}
	if placed.EventName() != "order.placed" || placed.OrderID() != o.ID() {
		t.Errorf("event = %q/%q", placed.EventName(), placed.OrderID())
	}
	if got := o.PullEvents(); len(got) != 0 {
		t.Errorf("events not cleared after pull")
	}
}

func TestOrder_StatusTransitions(t *testing.T) {
	o, _ := Place(filledCart(t), testShipping(), PaymentData{Method: cart.PaymentCOD}, cart.DefaultRules(), time.Now())

	if err := o.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := o.Confirm(); !errors.Is(err, ErrInvalidStatusChange) {
		t.Fatalf("double confirm allowed: %v", err)
	}
	if err := o.Cancel(); err != nil {
		t.Fatalf("cancel confirmed order: %v", err)
	}
	if err := o.Cancel(); !errors.Is(err, ErrInvalidStatusChange) {
		t.Fatalf("double cancel allowed: %v", err)
	}
}
