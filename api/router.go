package api

import (
	"github.com/krishivishwa/storefront/api/cart"
	"github.com/krishivishwa/storefront/api/checkout"
	"github.com/krishivishwa/storefront/api/consultation"
	"github.com/krishivishwa/storefront/api/content"
	"github.com/krishivishwa/storefront/api/health"
	"github.com/krishivishwa/storefront/api/middleware"
	"github.com/krishivishwa/storefront/api/shop"
	"github.com/krishivishwa/storefront/config"

	"github.com/gin-gonic/gin"
)

// Router Route configuration
type Router struct {
	engine                 *gin.Engine
	config                 *config.Config
	healthController       *health.Controller
	shopController         *shop.Controller
	cartController         *cart.Controller
	checkoutController     *checkout.Controller
	contentController      *content.Controller
	consultationController *consultation.Controller
}

// NewRouter Create route configuration
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	shopController *shop.Controller,
	cartController *cart.Controller,
	checkoutController *checkout.Controller,
	contentController *content.Controller,
	consultationController *consultation.Controller,
) *Router {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware (order is important)
	engine.Use(middleware.RequestIDMiddleware())                      // 1. Generate request ID first
	engine.Use(middleware.SessionIDMiddleware())                      // 2. Session ID for carts and wizards
	engine.Use(middleware.RecoveryMiddleware())                       // 3. Recovery middleware
	engine.Use(middleware.LoggingMiddleware())                        // 4. Logging middleware
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))                  // 5. CORS
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit)) // 6. Rate limiting

	return &Router{
		engine:                 engine,
		config:                 cfg,
		healthController:       healthController,
		shopController:         shopController,
		cartController:         cartController,
		checkoutController:     checkoutController,
		contentController:      contentController,
		consultationController: consultationController,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.shopController.RegisterRoutes(apiGroup)
		r.cartController.RegisterRoutes(apiGroup)
		r.checkoutController.RegisterRoutes(apiGroup)
		r.contentController.RegisterRoutes(apiGroup)
		r.consultationController.RegisterRoutes(apiGroup)
	}

	// Banner route kept at the root alongside its /api/v1 twin for
	// frontends that fetch hero banners before resolving the API base
	r.engine.GET("/banners/page/:page", r.contentController.BannersByPage)

	// Set root path route
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
