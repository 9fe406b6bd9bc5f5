// Package cart exposes the session cart over HTTP. Every route is keyed
// by the X-Session-ID header; mutations return the refreshed cart plus a
// toast notice for the storefront to display.
package cart

import (
	"net/http"

	"github.com/krishivishwa/storefront/api/response"
	cartapp "github.com/krishivishwa/storefront/application/cart"
	"github.com/krishivishwa/storefront/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Cart controller
type Controller struct {
	cartService *cartapp.Service
}

// NewController Create cart controller
func NewController(cartService *cartapp.Service) *Controller {
	return &Controller{
		cartService: cartService,
	}
}

// RegisterRoutes Register cart routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", c.View)
		cartGroup.POST("/items", c.AddItem)
		cartGroup.PUT("/items", c.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", c.RemoveItem)
		cartGroup.DELETE("", c.Clear)
	}
}

// View Current cart with totals and the free-shipping progress bar
// GET /api/v1/cart
func (c *Controller) View(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	cart, err := c.cartService.View(ctx.Request.Context(), sessionID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, cart, "cart retrieved successfully")
}

// AddItem Add a product to the cart, merging with an existing line
// POST /api/v1/cart/items
func (c *Controller) AddItem(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	var req cartapp.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.cartService.AddItem(ctx.Request.Context(), sessionID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "item added to cart")
}

// UpdateQuantity Set a cart line's quantity; zero removes the line
// PUT /api/v1/cart/items
func (c *Controller) UpdateQuantity(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	var req cartapp.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.cartService.UpdateQuantity(ctx.Request.Context(), sessionID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "cart updated successfully")
}

// RemoveItem Remove one line from the cart
// DELETE /api/v1/cart/items/:productId
func (c *Controller) RemoveItem(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	productID := ctx.Param("productId")
	if productID == "" {
		response.HandleError(ctx, errors.BadRequest("product ID is required"), "product ID is required", http.StatusBadRequest)
		return
	}

	result, err := c.cartService.RemoveItem(ctx.Request.Context(), sessionID, productID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "item removed from cart")
}

// Clear Empty the cart
// DELETE /api/v1/cart
func (c *Controller) Clear(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	result, err := c.cartService.Clear(ctx.Request.Context(), sessionID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "cart cleared")
}
