package cart

// AddItemRequest Add-to-cart payload. Quantity defaults to 1.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest Quantity stepper payload.
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// LineResponse One cart line.
type LineResponse struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	UnitPrice     int64   `json:"unit_price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Quantity      int     `json:"quantity"`
	Subtotal      int64   `json:"subtotal"`
}

// TotalsResponse Pricing breakdown. Tax and COD surcharge appear only in
// checkout responses.
type TotalsResponse struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingFee  int64 `json:"shipping_fee"`
	Tax          int64 `json:"tax,omitempty"`
	CODSurcharge int64 `json:"cod_surcharge,omitempty"`
	Total        int64 `json:"total"`
}

// CartResponse Cart page payload.
type CartResponse struct {
	Lines                    []LineResponse `json:"lines"`
	ItemCount                int            `json:"item_count"`
	Totals                   TotalsResponse `json:"totals"`
	FreeShipping             bool           `json:"free_shipping"`
	RemainingForFreeShipping int64          `json:"remaining_for_free_shipping"`
	ShippingProgress         int            `json:"shipping_progress"`
}

// MutationResponse Result of a cart mutation: the refreshed cart plus an
// optional toast notice.
type MutationResponse struct {
	Notice string        `json:"notice,omitempty"`
	Cart   *CartResponse `json:"cart"`
}
