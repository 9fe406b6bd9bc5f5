/*
Package catalog holds the product catalog model and the pure
filter/sort rules applied when browsing the shop.
*/
package catalog

import "github.com/krishivishwa/storefront/domain/shared"

// Product A catalog entry. Immutable from the storefront's perspective;
// sourced from the catalog repository.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         shared.Money
	OriginalPrice shared.Money // zero when the product is not discounted
	Category      string
	Stock         int
	Rating        float64 // 0-5, 0 when unrated
	Image         string  // relative path served by the asset host
	Featured      bool
}

// DiscountPercent Rounded percentage off the original price, 0 when the
// product carries no discount.
func (p Product) DiscountPercent() int {
	orig := p.OriginalPrice.Amount()
	if orig <= 0 || orig <= p.Price.Amount() {
		return 0
	}
	off := orig - p.Price.Amount()
	return int((off*100 + orig/2) / orig)
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Category A named product grouping with its product count, as shown in
// the shop's filter panel.
type Category struct {
	Name         string
	ProductCount int
}
