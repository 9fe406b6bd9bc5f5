package cmd

import (
	"database/sql"
	"fmt"

	"github.com/krishivishwa/storefront/api"
	cartctl "github.com/krishivishwa/storefront/api/cart"
	checkoutctl "github.com/krishivishwa/storefront/api/checkout"
	consultctl "github.com/krishivishwa/storefront/api/consultation"
	contentctl "github.com/krishivishwa/storefront/api/content"
	"github.com/krishivishwa/storefront/api/health"
	shopctl "github.com/krishivishwa/storefront/api/shop"
	cartapp "github.com/krishivishwa/storefront/application/cart"
	checkoutapp "github.com/krishivishwa/storefront/application/checkout"
	consultapp "github.com/krishivishwa/storefront/application/consultation"
	contentapp "github.com/krishivishwa/storefront/application/content"
	shopapp "github.com/krishivishwa/storefront/application/shop"
	"github.com/krishivishwa/storefront/config"
	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/consultation"
	"github.com/krishivishwa/storefront/domain/content"
	"github.com/krishivishwa/storefront/domain/order"
	"github.com/krishivishwa/storefront/domain/shared"
	"github.com/krishivishwa/storefront/infrastructure/events"
	"github.com/krishivishwa/storefront/infrastructure/persistence/memory"
	"github.com/krishivishwa/storefront/infrastructure/persistence/mysql"
	"github.com/krishivishwa/storefront/infrastructure/refresh"
	"github.com/krishivishwa/storefront/infrastructure/upload"
	"github.com/krishivishwa/storefront/pkg/logger"
)

// components Everything the server needs, fully wired.
type components struct {
	router     *api.Router
	refreshers []*refresh.Refresher
	closers    []func() error
}

// pricingRules Build domain pricing rules from config, falling back to
// the store defaults for unset values.
func pricingRules(cfg *config.PricingConfig) cart.Rules {
	rules := cart.DefaultRules()
	if cfg.FreeShippingThreshold > 0 {
		rules.FreeShippingThreshold = cfg.FreeShippingThreshold
	}
	if cfg.CartShippingFee > 0 {
		rules.CartShippingFee = cfg.CartShippingFee
	}
	if cfg.CheckoutShippingFee > 0 {
		rules.CheckoutShippingFee = cfg.CheckoutShippingFee
	}
	if cfg.TaxRatePercent > 0 {
		rules.TaxRatePercent = cfg.TaxRatePercent
	}
	if cfg.CODSurcharge > 0 {
		rules.CODSurcharge = cfg.CODSurcharge
	}
	return rules
}

// screenshotPolicy Build the upload policy from config, falling back to
// the image-only 5MB default.
func screenshotPolicy(cfg *config.UploadConfig) checkout.ScreenshotPolicy {
	policy := checkout.DefaultScreenshotPolicy()
	if cfg.MaxSizeBytes > 0 {
		policy.MaxSize = cfg.MaxSizeBytes
	}
	if len(cfg.AllowedTypes) > 0 {
		policy.AllowedTypes = cfg.AllowedTypes
	}
	return policy
}

// build Wire repositories, services, controllers, and the router.
func build(cfg *config.Config) (*components, error) {
	var (
		productRepo    catalog.Repository
		orderRepo      order.Repository
		contentRepo    content.Repository
		subscriberRepo content.SubscriberRepository
		bookingRepo    consultation.BookingRepository
		contactRepo    consultation.ContactRepository
		sqlDB          *sql.DB
	)

	if cfg.Database.Type == "mysql" {
		db, err := mysql.Connect(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		if err := mysql.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		if sqlDB, err = db.DB(); err != nil {
			return nil, fmt.Errorf("failed to access sql db: %w", err)
		}

		productRepo = mysql.NewProductRepository(db)
		orderRepo = mysql.NewOrderRepository(db)
		contentRepo = mysql.NewContentRepository(db)
		subscriberRepo = mysql.NewSubscriberRepository(db)
		bookingRepo = mysql.NewBookingRepository(db)
		contactRepo = mysql.NewContactRepository(db)

		logger.Info("using mysql persistence layer")
	} else {
		productRepo = memory.NewProductRepository(nil)
		orderRepo = memory.NewOrderRepository()
		contentRepo = memory.NewContentRepository()
		subscriberRepo = memory.NewSubscriberRepository()
		bookingRepo = memory.NewBookingRepository()
		contactRepo = memory.NewContactRepository()

		logger.Info("using in-memory persistence layer")
	}

	// The content feeds are read far more often than they change; serve
	// them from a cache refreshed on the configured cadence.
	cachedContent := refresh.NewCachedContent(contentRepo)
	refreshers := cachedContent.Refreshers(
		cfg.Content.MarqueeRefresh,
		cfg.Content.NewsRefresh,
		cfg.Content.VideosRefresh,
	)

	// Session state (carts, wizards, like marks) lives in memory
	// regardless of the persistence layer.
	cartStore := memory.NewCartStore()
	wizardStore := memory.NewWizardStore()
	likeStore := memory.NewLikeStore()

	screenshotStore, err := upload.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload dir: %w", err)
	}

	var (
		publisher shared.EventPublisher
		closers   []func() error
	)
	if cfg.Events.Publisher == "kafka" {
		topic := cfg.Events.Topic
		if topic == "" {
			topic = events.TopicOrderCreated
		}
		kafkaPublisher := events.NewKafkaPublisher(cfg.Events.Brokers, topic)
		closers = append(closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
		logger.Info("publishing order events to kafka")
	} else {
		publisher = events.NewLoggingPublisher()
	}

	rules := pricingRules(&cfg.Pricing)
	policy := screenshotPolicy(&cfg.Upload)

	shopService := shopapp.NewService(productRepo)
	cartService := cartapp.NewService(cartStore, productRepo, rules)
	checkoutService := checkoutapp.NewService(wizardStore, cartStore, orderRepo, screenshotStore, publisher, rules, policy)
	contentService := contentapp.NewService(cachedContent, subscriberRepo, likeStore)
	consultService := consultapp.NewService(bookingRepo, contactRepo)

	router := api.NewRouter(
		cfg,
		health.NewController(cfg, sqlDB),
		shopctl.NewController(shopService),
		cartctl.NewController(cartService),
		checkoutctl.NewController(checkoutService),
		contentctl.NewController(contentService),
		consultctl.NewController(consultService),
	)
	router.SetupRoutes()

	return &components{
		router:     router,
		refreshers: refreshers,
		closers:    closers,
	}, nil
}
