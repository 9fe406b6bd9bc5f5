package mysql

import (
	"gorm.io/gorm"

	"github.com/krishivishwa/storefront/infrastructure/persistence/mysql/po"
)

// AutoMigrate creates or updates every storefront table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&po.ProductPO{},
		&po.OrderPO{},
		&po.OrderItemPO{},
		&po.BookingPO{},
		&po.ContactMessagePO{},
		&po.SubscriberPO{},
		&po.BannerPO{},
		&po.TimelineEntryPO{},
		&po.TestimonialPO{},
		&po.NewsStoryPO{},
		&po.VideoPO{},
		&po.MarqueeItemPO{},
	)
}
