package shop

import "github.com/krishivishwa/storefront/domain/catalog"

func toProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price.Amount(),
		OriginalPrice:   p.OriginalPrice.Amount(),
		DiscountPercent: p.DiscountPercent(),
		Category:        p.Category,
		Stock:           p.Stock,
		InStock:         p.InStock(),
		Rating:          p.Rating,
		Image:           p.Image,
		Featured:        p.Featured,
	}
}

func toProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toCategoryResponses(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{Name: c.Name, ProductCount: c.ProductCount}
	}
	return out
}
