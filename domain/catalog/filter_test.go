package catalog

import (
	"reflect"
	"testing"

	"github.com/krishivishwa/storefront/domain/shared"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Neem Oil Concentrate", Category: "Pesticides", Price: shared.Rupees(450)},
		{ID: "p2", Name: "Bio Compost", Category: "Fertilizers", Price: shared.Rupees(250), Featured: true},
		{ID: "p3", Name: "Vermi Compost", Category: "Fertilizers", Price: shared.Rupees(300)},
		{ID: "p4", Name: "Seed Treatment Kit", Category: "Seeds", Price: shared.Rupees(800), Featured: true},
		{ID: "p5", Name: "Humic Acid", Category: "Fertilizers", Price: shared.Rupees(550)},
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	got := FilterAndSort(sampleProducts(), Query{Categories: []string{"Fertilizers"}})
	want := []string{"p2", "p3", "p5"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("category filter = %v, want %v", ids(got), want)
	}
}

func TestFilterByMaxPrice(t *testing.T) {
	got := FilterAndSort(sampleProducts(), Query{MaxPrice: 300})
	want := []string{"p2", "p3"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("price filter = %v, want %v", ids(got), want)
	}
}

func TestFilterBySearchCaseInsensitive(t *testing.T) {
	got := FilterAndSort(sampleProducts(), Query{Search: "compost"})
	want := []string{"p2", "p3"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("search filter = %v, want %v", ids(got), want)
	}
}

func TestSortOrders(t *testing.T) {
	products := sampleProducts()

	low := FilterAndSort(products, Query{SortBy: SortPriceLow})
	if got, want := ids(low), []string{"p2", "p3", "p1", "p5", "p4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("price-low = %v, want %v", got, want)
	}

	high := FilterAndSort(products, Query{SortBy: SortPriceHigh})
	if got, want := ids(high), []string{"p4", "p5", "p1", "p3", "p2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("price-high = %v, want %v", got, want)
	}

	byName := FilterAndSort(products, Query{SortBy: SortName})
	if got := byName[0].Name; got != "Bio Compost" {
		t.Errorf("name sort first = %q, want Bio Compost", got)
	}

	featured := FilterAndSort(products, Query{SortBy: SortFeatured})
	if got, want := ids(featured), []string{"p2", "p4", "p1", "p3", "p5"}; !reflect.DeepEqual(got, want) {
		t.Errorf("featured = %v, want %v (featured first, stable otherwise)", got, want)
	}
}

func TestFilterAndSortIsPure(t *testing.T) {
	products := sampleProducts()
	q := Query{Categories: []string{"Fertilizers"}, SortBy: SortPriceHigh}

	first := FilterAndSort(products, q)
	second := FilterAndSort(products, q)
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("repeated calls disagree: %v vs %v", ids(first), ids(second))
	}
	if !reflect.DeepEqual(ids(products), []string{"p1", "p2", "p3", "p4", "p5"}) {
		t.Error("input slice was mutated")
	}
}

func TestRelated(t *testing.T) {
	products := sampleProducts()
	got := Related(products, products[1], 4)
	if want := []string{"p3", "p5"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Related = %v, want %v", ids(got), want)
	}
}

func TestDiscountPercent(t *testing.T) {
	p := Product{Price: shared.Rupees(450), OriginalPrice: shared.Rupees(600)}
	if got := p.DiscountPercent(); got != 25 {
		t.Errorf("DiscountPercent = %d, want 25", got)
	}
	undiscounted := Product{Price: shared.Rupees(450)}
	if got := undiscounted.DiscountPercent(); got != 0 {
		t.Errorf("undiscounted DiscountPercent = %d, want 0", got)
	}
}
