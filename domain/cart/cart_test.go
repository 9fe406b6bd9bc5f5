package cart

import (
	"testing"

	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/shared"
)

func product(id string, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Category: "Fertilizers", Price: shared.Rupees(price)}
}

func TestAddMergesLines(t *testing.T) {
	c := New()

	qty, err := c.Add(product("p1", 300), 2)
	if err != nil || qty != 2 {
		t.Fatalf("first add: qty=%d err=%v", qty, err)
	}
	qty, err = c.Add(product("p1", 300), 3)
	if err != nil || qty != 5 {
		t.Fatalf("second add: qty=%d err=%v", qty, err)
	}

	if c.Len() != 1 {
		t.Errorf("expected one line, got %d", c.Len())
	}
	if got := c.Lines()[0].Quantity(); got != 5 {
		t.Errorf("merged quantity = %d, want 5", got)
	}
}

func TestAddRejectsZeroQuantity(t *testing.T) {
	c := New()
	if _, err := c.Add(product("p1", 300), 0); err != ErrInvalidQuantity {
		t.Errorf("Add with qty 0: err=%v, want ErrInvalidQuantity", err)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := New()
	c.Add(product("p2", 100), 1)
	c.Add(product("p1", 200), 1)
	c.Add(product("p3", 300), 1)

	lines := c.Lines()
	for i, want := range []string{"p2", "p1", "p3"} {
		if lines[i].ProductID() != want {
			t.Errorf("line %d = %s, want %s", i, lines[i].ProductID(), want)
		}
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(product("p1", 300), 2)

	if err := c.UpdateQuantity("p1", 7); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := c.Lines()[0].Quantity(); got != 7 {
		t.Errorf("quantity = %d, want 7", got)
	}

	// Below 1 is a no-op, not a removal.
	if err := c.UpdateQuantity("p1", 0); err != nil {
		t.Fatalf("update to 0 should be a silent no-op, got %v", err)
	}
	if got := c.Lines()[0].Quantity(); got != 7 {
		t.Errorf("quantity after no-op = %d, want 7", got)
	}

	if err := c.UpdateQuantity("missing", 3); err != ErrLineNotFound {
		t.Errorf("updating missing line: err=%v, want ErrLineNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(product("p1", 300), 1)
	c.Add(product("p2", 100), 1)

	removed, ok := c.Remove("p1")
	if !ok || removed.ProductID() != "p1" {
		t.Fatalf("remove p1: ok=%v removed=%s", ok, removed.ProductID())
	}
	if c.Len() != 1 || c.Lines()[0].ProductID() != "p2" {
		t.Errorf("expected only p2 to remain")
	}

	if _, ok := c.Remove("p1"); ok {
		t.Error("removing an absent line should report ok=false")
	}
}

func TestItemCountAndClear(t *testing.T) {
	c := New()
	c.Add(product("p1", 300), 2)
	c.Add(product("p2", 100), 3)

	if got := c.ItemCount(); got != 5 {
		t.Errorf("ItemCount = %d, want 5", got)
	}

	c.Clear()
	if !c.IsEmpty() {
		t.Error("cart should be empty after Clear")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(product("p1", 300), 1)

	lines := c.Lines()
	lines[0] = Line{}
	if c.Lines()[0].ProductID() != "p1" {
		t.Error("mutating the returned slice must not affect the cart")
	}
}
