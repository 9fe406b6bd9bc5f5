// Package shop exposes the product catalog over HTTP: the filterable
// product listing, single product detail, and the category filter list.
package shop

import (
	"net/http"

	"github.com/krishivishwa/storefront/api/response"
	shopapp "github.com/krishivishwa/storefront/application/shop"
	"github.com/krishivishwa/storefront/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Product catalog controller
type Controller struct {
	shopService *shopapp.Service
}

// NewController Create catalog controller
func NewController(shopService *shopapp.Service) *Controller {
	return &Controller{
		shopService: shopService,
	}
}

// RegisterRoutes Register catalog routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/products", c.ListProducts)
	router.GET("/products/:id", c.GetProduct)
	router.GET("/product-categories", c.Categories)
}

// ListProducts Filtered, sorted product listing
// GET /api/v1/products?category=...&max_price=...&q=...&sort=...&limit=...
func (c *Controller) ListProducts(ctx *gin.Context) {
	var req shopapp.ListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.HandleError(ctx, err, "invalid query parameters", http.StatusBadRequest)
		return
	}

	list, err := c.shopService.ListProducts(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, list, "products retrieved successfully")
}

// GetProduct Product detail with related products
// GET /api/v1/products/:id
func (c *Controller) GetProduct(ctx *gin.Context) {
	productID := ctx.Param("id")
	if productID == "" {
		response.HandleError(ctx, errors.BadRequest("product ID is required"), "product ID is required", http.StatusBadRequest)
		return
	}

	detail, err := c.shopService.GetProduct(ctx.Request.Context(), productID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, detail, "product retrieved successfully")
}

// Categories Category filter options with product counts
// GET /api/v1/product-categories
func (c *Controller) Categories(ctx *gin.Context) {
	categories, err := c.shopService.Categories(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, categories, "categories retrieved successfully")
}
