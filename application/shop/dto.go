package shop

// ListRequest Shop page query parameters. Limit caps the visible products
// the way the shop page's "load more" counter does; Total still reports
// every match.
type ListRequest struct {
	Categories []string `form:"categories"`
	MaxPrice   int64    `form:"max_price"`
	Search     string   `form:"q"`
	SortBy     string   `form:"sort"`
	Limit      int      `form:"limit"`
}

// ProductResponse One catalog product as served to the shop page.
type ProductResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           int64   `json:"price"`
	OriginalPrice   int64   `json:"original_price,omitempty"`
	DiscountPercent int     `json:"discount_percent,omitempty"`
	Category        string  `json:"category"`
	Stock           int     `json:"stock"`
	InStock         bool    `json:"in_stock"`
	Rating          float64 `json:"rating,omitempty"`
	Image           string  `json:"image"`
	Featured        bool    `json:"featured"`
}

// CategoryResponse One entry of the category index.
type CategoryResponse struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// ListResponse Shop page payload.
type ListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// DetailResponse Product detail payload.
type DetailResponse struct {
	Product ProductResponse   `json:"product"`
	Related []ProductResponse `json:"related"`
}
