// Package content exposes the marketing surfaces: page banners, the
// company timeline, testimonials, the updates feed (news, videos,
// marquee), story likes, and newsletter signup.
package content

import (
	"io"
	"net/http"

	"github.com/krishivishwa/storefront/api/response"
	contentapp "github.com/krishivishwa/storefront/application/content"
	"github.com/krishivishwa/storefront/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller Content controller
type Controller struct {
	contentService *contentapp.Service
}

// NewController Create content controller
func NewController(contentService *contentapp.Service) *Controller {
	return &Controller{
		contentService: contentService,
	}
}

// RegisterRoutes Register content routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/banners/page/:page", c.BannersByPage)
	router.GET("/timeline", c.Timeline)
	router.GET("/testimonials", c.Testimonials)

	updatesGroup := router.Group("/updates")
	{
		updatesGroup.GET("/news", c.News)
		updatesGroup.GET("/videos", c.Videos)
		updatesGroup.GET("/marquee", c.Marquee)
		updatesGroup.POST("/news/:id/like", c.LikeStory)
		updatesGroup.POST("/newsletter/subscribe", c.Subscribe)
	}
}

// BannersByPage Active banners for one page, styles normalized
// GET /api/v1/banners/page/:page
func (c *Controller) BannersByPage(ctx *gin.Context) {
	page := ctx.Param("page")
	if page == "" {
		response.HandleError(ctx, errors.BadRequest("page is required"), "page is required", http.StatusBadRequest)
		return
	}

	banners, err := c.contentService.BannersByPage(ctx.Request.Context(), page)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, banners, "banners retrieved successfully")
}

// Timeline Company milestone timeline
// GET /api/v1/timeline
func (c *Controller) Timeline(ctx *gin.Context) {
	entries, err := c.contentService.Timeline(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, entries, "timeline retrieved successfully")
}

// Testimonials Customer testimonials
// GET /api/v1/testimonials
func (c *Controller) Testimonials(ctx *gin.Context) {
	testimonials, err := c.contentService.Testimonials(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, testimonials, "testimonials retrieved successfully")
}

// News News stories with this session's like flags
// GET /api/v1/updates/news
func (c *Controller) News(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	stories, err := c.contentService.News(ctx.Request.Context(), sessionID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, stories, "news retrieved successfully")
}

// Videos Video gallery
// GET /api/v1/updates/videos
func (c *Controller) Videos(ctx *gin.Context) {
	videos, err := c.contentService.Videos(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, videos, "videos retrieved successfully")
}

// Marquee Active ticker messages
// GET /api/v1/updates/marquee
func (c *Controller) Marquee(ctx *gin.Context) {
	items, err := c.contentService.Marquee(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, items, "marquee retrieved successfully")
}

// LikeStory Like or unlike a news story, once per session
// POST /api/v1/updates/news/:id/like
func (c *Controller) LikeStory(ctx *gin.Context) {
	sessionID := response.GetSessionID(ctx)

	storyID := ctx.Param("id")
	if storyID == "" {
		response.HandleError(ctx, errors.BadRequest("story ID is required"), "story ID is required", http.StatusBadRequest)
		return
	}

	// A bare POST counts as a like; the body is only needed to unlike.
	var req contentapp.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err != io.EOF {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.contentService.LikeStory(ctx.Request.Context(), sessionID, storyID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "like updated successfully")
}

// Subscribe Newsletter signup
// POST /api/v1/updates/newsletter/subscribe
func (c *Controller) Subscribe(ctx *gin.Context) {
	var req contentapp.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.contentService.Subscribe(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, result, "subscribed successfully")
}
