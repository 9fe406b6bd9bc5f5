package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishivishwa/storefront/infrastructure/persistence/memory"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
)

// The development seed backs these tests; it has ten products across five
// categories with one out-of-stock item.
func testService() *Service {
	return NewService(memory.NewProductRepository(nil))
}

func TestListProductsReturnsWholeCatalog(t *testing.T) {
	s := testService()

	list, err := s.ListProducts(context.Background(), ListRequest{})
	require.NoError(t, err)

	assert.Equal(t, 10, list.Total)
	assert.Len(t, list.Products, 10)
	assert.NotEmpty(t, list.Categories)

	// Featured sorting is the default, so featured products lead.
	assert.True(t, list.Products[0].Featured)
}

func TestListProductsFiltersByCategory(t *testing.T) {
	s := testService()

	list, err := s.ListProducts(context.Background(), ListRequest{
		Categories: []string{"Insecticide"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, list.Products)
	for _, p := range list.Products {
		assert.Equal(t, "Insecticide", p.Category)
	}
}

func TestListProductsMaxPrice(t *testing.T) {
	s := testService()

	list, err := s.ListProducts(context.Background(), ListRequest{MaxPrice: 300})
	require.NoError(t, err)

	require.NotEmpty(t, list.Products)
	for _, p := range list.Products {
		assert.LessOrEqual(t, p.Price, int64(300))
	}
}

func TestListProductsSearchIsCaseInsensitive(t *testing.T) {
	s := testService()

	list, err := s.ListProducts(context.Background(), ListRequest{Search: "neem"})
	require.NoError(t, err)

	require.NotEmpty(t, list.Products)
	for _, p := range list.Products {
		assert.Contains(t, p.Name, "Neem")
	}
}

func TestListProductsSortByPrice(t *testing.T) {
	s := testService()

	list, err := s.ListProducts(context.Background(), ListRequest{SortBy: "price-low"})
	require.NoError(t, err)

	for i := 1; i < len(list.Products); i++ {
		assert.LessOrEqual(t, list.Products[i-1].Price, list.Products[i].Price)
	}
}

func TestListProductsLimitCapsVisibleNotTotal(t *testing.T) {
	s := testService()

	list, err := s.ListProducts(context.Background(), ListRequest{Limit: 4})
	require.NoError(t, err)

	assert.Len(t, list.Products, 4)
	assert.Equal(t, 10, list.Total)
}

func TestGetProductWithRelated(t *testing.T) {
	s := testService()

	detail, err := s.GetProduct(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "1", detail.Product.ID)
	assert.LessOrEqual(t, len(detail.Related), 4)
	for _, related := range detail.Related {
		assert.Equal(t, detail.Product.Category, related.Category)
		assert.NotEqual(t, detail.Product.ID, related.ID)
	}
}

func TestGetProductNotFound(t *testing.T) {
	s := testService()

	_, err := s.GetProduct(context.Background(), "999")
	assert.True(t, apperrors.Is(err, apperrors.CodeProductNotFound))
}

func TestCategoriesCarryCounts(t *testing.T) {
	s := testService()

	categories, err := s.Categories(context.Background())
	require.NoError(t, err)

	total := 0
	for _, c := range categories {
		assert.Positive(t, c.ProductCount)
		total += c.ProductCount
	}
	assert.Equal(t, 10, total)
}
