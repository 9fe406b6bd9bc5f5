// Package memory In-memory persistence for development and tests. Every
// repository satisfies the same interface as its MySQL counterpart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/shared"
)

// ProductRepository In-memory catalog, seeded at construction.
type ProductRepository struct {
	mu       sync.RWMutex
	products []catalog.Product
}

// NewProductRepository Create a catalog repository holding the given
// products. Nil means the development seed.
func NewProductRepository(products []catalog.Product) *ProductRepository {
	if products == nil {
		products = SeedProducts()
	}
	return &ProductRepository{products: products}
}

// FindAll Return every product.
func (r *ProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID Find a product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrProductNotFound
}

// Categories Return category names with product counts, sorted by name.
func (r *ProductRepository) Categories(ctx context.Context) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range r.products {
		counts[p.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]catalog.Category, len(names))
	for i, name := range names {
		categories[i] = catalog.Category{Name: name, ProductCount: counts[name]}
	}
	return categories, nil
}

// SeedProducts The development catalog.
func SeedProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID: "1", Name: "Bio Boost Granules", Category: "Biofertilizers",
			Description: "Granular biofertilizer that fixes atmospheric nitrogen and improves soil structure.",
			Price:       shared.Rupees(450), OriginalPrice: shared.Rupees(520),
			Stock: 120, Rating: 4.6, Image: "/uploads/products/bio-boost-granules.jpg", Featured: true,
		},
		{
			ID: "2", Name: "Rhizo Gold", Category: "Biofertilizers",
			Description: "Rhizobium culture for legumes, improves nodulation and yield.",
			Price:       shared.Rupees(280),
			Stock:       80, Rating: 4.4, Image: "/uploads/products/rhizo-gold.jpg",
		},
		{
			ID: "3", Name: "Neem Shield", Category: "Insecticide",
			Description: "Cold-pressed neem oil concentrate for sucking pests, safe for pollinators.",
			Price:       shared.Rupees(350), OriginalPrice: shared.Rupees(400),
			Stock: 200, Rating: 4.7, Image: "/uploads/products/neem-shield.jpg", Featured: true,
		},
		{
			ID: "4", Name: "Larva Stop", Category: "Insecticide",
			Description: "Bacillus thuringiensis formulation targeting caterpillar larvae.",
			Price:       shared.Rupees(520),
			Stock:       45, Rating: 4.2, Image: "/uploads/products/larva-stop.jpg",
		},
		{
			ID: "5", Name: "Tricho Guard", Category: "Fungicide",
			Description: "Trichoderma viride powder for soil-borne fungal disease control.",
			Price:       shared.Rupees(300),
			Stock:       150, Rating: 4.5, Image: "/uploads/products/tricho-guard.jpg", Featured: true,
		},
		{
			ID: "6", Name: "Copper Pro", Category: "Fungicide",
			Description: "Copper-based contact fungicide for blight and leaf spot.",
			Price:       shared.Rupees(410), OriginalPrice: shared.Rupees(480),
			Stock: 0, Rating: 4.1, Image: "/uploads/products/copper-pro.jpg",
		},
		{
			ID: "7", Name: "Flora Surge", Category: "Growth Promoter",
			Description: "Seaweed extract biostimulant for flowering and fruit set.",
			Price:       shared.Rupees(600), OriginalPrice: shared.Rupees(700),
			Stock: 60, Rating: 4.8, Image: "/uploads/products/flora-surge.jpg", Featured: true,
		},
		{
			ID: "8", Name: "Root Max", Category: "Growth Promoter",
			Description: "Humic and fulvic acid blend for vigorous root development.",
			Price:       shared.Rupees(240),
			Stock:       90, Rating: 4.3, Image: "/uploads/products/root-max.jpg",
		},
		{
			ID: "9", Name: "Vermi Rich", Category: "Organic Manure",
			Description: "Screened vermicompost enriched with beneficial microbes.",
			Price:       shared.Rupees(180),
			Stock:       300, Rating: 4.6, Image: "/uploads/products/vermi-rich.jpg",
		},
		{
			ID: "10", Name: "Soil Revive Kit", Category: "Organic Manure",
			Description: "Combination pack of compost cultures and micronutrients for tired soil.",
			Price:       shared.Rupees(850), OriginalPrice: shared.Rupees(999),
			Stock: 25, Rating: 4.9, Image: "/uploads/products/soil-revive-kit.jpg", Featured: true,
		},
	}
}
