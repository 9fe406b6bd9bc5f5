// Package consultation exposes the consultation booking and contact forms.
package consultation

import (
	"net/http"

	"github.com/krishivishwa/storefront/api/response"
	consultapp "github.com/krishivishwa/storefront/application/consultation"

	"github.com/gin-gonic/gin"
)

// Controller Consultation controller
type Controller struct {
	consultService *consultapp.Service
}

// NewController Create consultation controller
func NewController(consultService *consultapp.Service) *Controller {
	return &Controller{
		consultService: consultService,
	}
}

// RegisterRoutes Register intake routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/consultations", c.BookConsultation)
	router.POST("/contact", c.SubmitContact)
}

// BookConsultation Book an agronomy consultation
// POST /api/v1/consultations
func (c *Controller) BookConsultation(ctx *gin.Context) {
	var req consultapp.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	booking, err := c.consultService.BookConsultation(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, booking, "consultation booked successfully")
}

// SubmitContact Submit a contact form message
// POST /api/v1/contact
func (c *Controller) SubmitContact(ctx *gin.Context) {
	var req consultapp.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	message, err := c.consultService.SubmitContact(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, message, "message sent successfully")
}
