package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaincart "github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/shared"
	"github.com/krishivishwa/storefront/infrastructure/persistence/memory"
	apperrors "github.com/krishivishwa/storefront/pkg/errors"
)

func testService() *Service {
	products := []catalog.Product{
		{ID: "p1", Name: "Bio Boost", Category: "Biofertilizers", Price: shared.Rupees(300)},
		{ID: "p2", Name: "Neem Shield", Category: "Insecticide", Price: shared.Rupees(150)},
	}
	return NewService(memory.NewCartStore(), memory.NewProductRepository(products), domaincart.DefaultRules())
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	s := testService()
	ctx := context.Background()

	resp, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, "1 Bio Boost added", resp.Notice)
	assert.Equal(t, 1, resp.Cart.ItemCount)
}

func TestAddItemMergeNoticeShowsRunningTotal(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	resp, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, "2 Bio Boost added (total 3)", resp.Notice)
	require.Len(t, resp.Cart.Lines, 1)
	assert.Equal(t, 3, resp.Cart.Lines[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	s := testService()

	_, err := s.AddItem(context.Background(), "sess", AddItemRequest{ProductID: "nope"})
	assert.True(t, apperrors.Is(err, apperrors.CodeProductNotFound))
}

func TestViewShowsFreeShippingProgress(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	resp, err := s.View(ctx, "sess")
	require.NoError(t, err)

	assert.False(t, resp.FreeShipping)
	assert.Equal(t, int64(200), resp.RemainingForFreeShipping)
	assert.Equal(t, 60, resp.ShippingProgress)
	assert.Equal(t, int64(99), resp.Totals.ShippingFee)
	assert.Equal(t, int64(399), resp.Totals.Total)
}

func TestViewAboveThresholdShipsFree(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	resp, err := s.View(ctx, "sess")
	require.NoError(t, err)

	assert.True(t, resp.FreeShipping)
	assert.Equal(t, int64(0), resp.Totals.ShippingFee)
	assert.Equal(t, int64(600), resp.Totals.Total)
}

func TestUpdateQuantity(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	resp, err := s.UpdateQuantity(ctx, "sess", UpdateQuantityRequest{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Cart.Lines[0].Quantity)

	_, err = s.UpdateQuantity(ctx, "sess", UpdateQuantityRequest{ProductID: "p2", Quantity: 1})
	assert.True(t, apperrors.Is(err, apperrors.CodeCartLineMissing))
}

func TestRemoveItem(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)

	resp, err := s.RemoveItem(ctx, "sess", "p2")
	require.NoError(t, err)
	assert.Equal(t, "Neem Shield removed", resp.Notice)
	assert.Empty(t, resp.Cart.Lines)

	resp, err = s.RemoveItem(ctx, "sess", "p2")
	require.NoError(t, err)
	assert.Empty(t, resp.Notice)
	assert.Empty(t, resp.Cart.Lines)
}

func TestRemoveItemAbsentLineLeavesCartUnchanged(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	resp, err := s.RemoveItem(ctx, "sess", "p2")
	require.NoError(t, err)
	assert.Empty(t, resp.Notice)
	require.Len(t, resp.Cart.Lines, 1)
	assert.Equal(t, 2, resp.Cart.Lines[0].Quantity)
}

func TestClear(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "sess", AddItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	resp, err := s.Clear(ctx, "sess")
	require.NoError(t, err)
	assert.Zero(t, resp.Cart.ItemCount)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := testService()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "alice", AddItemRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	resp, err := s.View(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, resp.ItemCount)
}
