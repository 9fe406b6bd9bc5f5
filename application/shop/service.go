/*
Package shop Application layer for the product catalog: listing with
filters and sorting, product detail with related products, and the
category index.
*/
package shop

import (
	"context"

	"go.uber.org/zap"

	"github.com/krishivishwa/storefront/domain/catalog"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
	"github.com/krishivishwa/storefront/pkg/logger"
)

// Service Catalog read operations.
type Service struct {
	products catalog.Repository
}

// NewService Create catalog application service.
func NewService(products catalog.Repository) *Service {
	return &Service{products: products}
}

// ListProducts returns the filtered, sorted catalog slice along with the
// category index so one call renders the whole shop page.
func (s *Service) ListProducts(ctx context.Context, req ListRequest) (*ListResponse, error) {
	all, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load products")
	}

	query := catalog.Query{
		Categories: req.Categories,
		MaxPrice:   req.MaxPrice,
		Search:     req.Search,
		SortBy:     catalog.ParseSortBy(req.SortBy),
	}
	filtered := catalog.FilterAndSort(all, query)
	matched := len(filtered)
	if req.Limit > 0 && req.Limit < len(filtered) {
		filtered = filtered[:req.Limit]
	}

	categories, err := s.products.Categories(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load categories")
	}

	logger.Debug("catalog listed",
		zap.Int("matched", matched),
		zap.Int("total", len(all)))

	return &ListResponse{
		Products:   toProductResponses(filtered),
		Categories: toCategoryResponses(categories),
		Total:      matched,
	}, nil
}

// GetProduct returns one product plus up to four related products from the
// same category.
func (s *Service) GetProduct(ctx context.Context, id string) (*DetailResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	all, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load products")
	}

	return &DetailResponse{
		Product: toProductResponse(p),
		Related: toProductResponses(catalog.Related(all, p, 4)),
	}, nil
}

// Categories returns the category index with product counts.
func (s *Service) Categories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.products.Categories(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to load categories")
	}
	return toCategoryResponses(categories), nil
}
