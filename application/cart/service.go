/*
Package cart Application layer for the session cart: add, update, remove,
clear, and the cart-page view with shipping progress.
*/
package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/catalog"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
	"github.com/krishivishwa/storefront/pkg/logger"
)

// Store Session-scoped cart storage. With runs fn with the session's cart
// under the store's lock; the cart aggregate itself is not synchronized.
type Store interface {
	With(sessionID string, fn func(*cart.Cart) error) error
	// Drop discards the session's cart entirely.
	Drop(sessionID string)
}

// Service Cart operations for one storefront session.
type Service struct {
	store    Store
	products catalog.Repository
	rules    cart.Rules
}

// NewService Create cart application service.
func NewService(store Store, products catalog.Repository, rules cart.Rules) *Service {
	return &Service{store: store, products: products, rules: rules}
}

// View returns the cart-page projection: lines, subtotal plus shipping
// only, and the free-shipping progress banner data.
func (s *Service) View(ctx context.Context, sessionID string) (*CartResponse, error) {
	var resp *CartResponse
	err := s.store.With(sessionID, func(c *cart.Cart) error {
		resp = toCartResponse(c, cart.CartView, s.rules)
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return resp, nil
}

// AddItem puts quantity units of a product into the session's cart. Adding
// a product already in the cart merges quantities, and the notice says so.
func (s *Service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (*MutationResponse, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	var resp *MutationResponse
	err = s.store.With(sessionID, func(c *cart.Cart) error {
		total, addErr := c.Add(product, qty)
		if addErr != nil {
			return addErr
		}
		notice := fmt.Sprintf("%d %s added", qty, product.Name)
		if total > qty {
			notice = fmt.Sprintf("%d %s added (total %d)", qty, product.Name, total)
		}
		resp = &MutationResponse{
			Notice: notice,
			Cart:   toCartResponse(c, cart.CartView, s.rules),
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}

	logger.Debug("cart item added",
		zap.String("session_id", sessionID),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", qty))
	return resp, nil
}

// UpdateQuantity sets the quantity of an existing line. Zero and negative
// quantities are ignored, matching the stepper behavior on the cart page.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, req UpdateQuantityRequest) (*MutationResponse, error) {
	var resp *MutationResponse
	err := s.store.With(sessionID, func(c *cart.Cart) error {
		if updErr := c.UpdateQuantity(req.ProductID, req.Quantity); updErr != nil {
			return updErr
		}
		resp = &MutationResponse{Cart: toCartResponse(c, cart.CartView, s.rules)}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return resp, nil
}

// RemoveItem deletes a line from the cart. Removing a line that is not
// there leaves the cart as it is; the caller still gets the current cart
// back, just without a removal notice.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*MutationResponse, error) {
	var resp *MutationResponse
	err := s.store.With(sessionID, func(c *cart.Cart) error {
		resp = &MutationResponse{}
		if line, ok := c.Remove(productID); ok {
			resp.Notice = fmt.Sprintf("%s removed", line.Name())
		}
		resp.Cart = toCartResponse(c, cart.CartView, s.rules)
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return resp, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) (*MutationResponse, error) {
	var resp *MutationResponse
	err := s.store.With(sessionID, func(c *cart.Cart) error {
		c.Clear()
		resp = &MutationResponse{Cart: toCartResponse(c, cart.CartView, s.rules)}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDomainError(err)
	}
	return resp, nil
}
