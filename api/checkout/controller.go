// Package checkout exposes the four-step checkout wizard and the orders
// it produces. Wizard routes are keyed by the X-Session-ID header; a step
// that fails validation still returns 200 with the field errors in the
// wizard state, since a blocked step is part of the flow, not a fault.
package checkout

import (
	"net/http"
	"strings"

	"github.com/krishivishwa/storefront/api/response"
	checkoutapp "github.com/krishivishwa/storefront/application/checkout"
	"github.com/krishivishwa/storefront/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Checkout controller
type Controller struct {
	checkoutService *checkoutapp.Service
}

// NewController Create checkout controller
func NewController(checkoutService *checkoutapp.Service) *Controller {
	return &Controller{
		checkoutService: checkoutService,
	}
}

// RegisterRoutes Register checkout and order routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	checkoutGroup := router.Group("/checkout")
	{
		checkoutGroup.GET("", c.State)
		checkoutGroup.POST("/next", c.Next)
		checkoutGroup.POST("/prev", c.Prev)
		checkoutGroup.PATCH("/shipping", c.UpdateShipping)
		checkoutGroup.PATCH("/payment", c.UpdatePayment)
		checkoutGroup.POST("/screenshot", c.UploadScreenshot)
	}

	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.PlaceOrder)
		orderGroup.GET("", c.ListOrders)
		orderGroup.GET("/:id", c.GetOrder)
	}
}

// State Current wizard state with the cart priced for checkout
// GET /api/v1/checkout
func (c *Controller) State(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	state, err := c.checkoutService.State(ctx.Request.Context(), sessionID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, state, "checkout state retrieved successfully")
}

// Next Advance the wizard one step, validating the current step
// POST /api/v1/checkout/next
func (c *Controller) Next(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	state, err := c.checkoutService.Next(ctx.Request.Context(), sessionID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, state, "checkout step updated")
}

// Prev Go back one step without validation
// POST /api/v1/checkout/prev
func (c *Controller) Prev(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	state, err := c.checkoutService.Prev(ctx.Request.Context(), sessionID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, state, "checkout step updated")
}

// UpdateShipping Patch shipping form fields; typing clears a field's error
// PATCH /api/v1/checkout/shipping
func (c *Controller) UpdateShipping(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	var req checkoutapp.UpdateShippingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	state, err := c.checkoutService.UpdateShipping(ctx.Request.Context(), sessionID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, state, "shipping information updated")
}

// UpdatePayment Switch payment method or set the transaction ID
// PATCH /api/v1/checkout/payment
func (c *Controller) UpdatePayment(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	var req checkoutapp.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	state, err := c.checkoutService.UpdatePayment(ctx.Request.Context(), sessionID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, state, "payment information updated")
}

// UploadScreenshot Attach the payment proof image to the wizard
// POST /api/v1/checkout/screenshot (multipart, field "screenshot")
func (c *Controller) UploadScreenshot(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	header, err := ctx.FormFile("screenshot")
	if err != nil {
		response.HandleError(ctx, err, "screenshot file is required", http.StatusBadRequest)
		return
	}

	file, err := header.Open()
	if err != nil {
		response.HandleError(ctx, err, "failed to read uploaded file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	upload := checkoutapp.ScreenshotUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}

	state, err := c.checkoutService.UploadScreenshot(ctx.Request.Context(), sessionID, upload)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, state, "screenshot uploaded successfully")
}

// PlaceOrder Submit the order from the confirmation step. A multipart
// request may carry the payment proof as "transactionScreenshot" for
// clients that submit everything in one shot instead of using the
// screenshot endpoint first.
// POST /api/v1/orders
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		if err := c.attachMultipartScreenshot(ctx, sessionID); err != nil {
			response.HandleAppError(ctx, err)
			return
		}
	}

	order, err := c.checkoutService.PlaceOrder(ctx.Request.Context(), sessionID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, order, "order placed successfully")
}

// attachMultipartScreenshot uploads the optional proof file from a
// combined order submission. A missing file field is fine; the wizard
// validation already decided whether one is required.
func (c *Controller) attachMultipartScreenshot(ctx *gin.Context, sessionID string) error {
	header, err := ctx.FormFile("transactionScreenshot")
	if err != nil {
		return nil
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, errors.CodeBadRequest, "failed to read uploaded file")
	}
	defer file.Close()

	_, err = c.checkoutService.UploadScreenshot(ctx.Request.Context(), sessionID, checkoutapp.ScreenshotUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	return err
}

// GetOrder Fetch one order for the confirmation page
// GET /api/v1/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	order, err := c.checkoutService.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order retrieved successfully")
}

// ListOrders All placed orders, newest first
// GET /api/v1/orders
func (c *Controller) ListOrders(ctx *gin.Context) {
	orders, err := c.checkoutService.ListOrders(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}
