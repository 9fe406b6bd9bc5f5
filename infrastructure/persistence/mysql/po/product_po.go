// Package po Persistence objects: database mapping only, no business
// logic, no GORM associations.
package po

import (
	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/domain/shared"
)

// ProductPO Product persistence object.
type ProductPO struct {
	ID            string  `gorm:"primaryKey;size:64"`
	Name          string  `gorm:"size:255;not null"`
	Description   string  `gorm:"type:text"`
	Price         int64   `gorm:"not null"`
	OriginalPrice int64   `gorm:"default:0"`
	Currency      string  `gorm:"size:3;not null"`
	Category      string  `gorm:"size:64;index;not null"`
	Stock         int     `gorm:"not null"`
	Rating        float64 `gorm:"default:0"`
	Image         string  `gorm:"size:512"`
	Featured      bool    `gorm:"default:false;index"`
}

func (ProductPO) TableName() string { return "products" }

// FromProductDomain Convert domain model to persistence object.
func FromProductDomain(p catalog.Product) ProductPO {
	return ProductPO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.Amount(),
		OriginalPrice: p.OriginalPrice.Amount(),
		Currency:      p.Price.Currency(),
		Category:      p.Category,
		Stock:         p.Stock,
		Rating:        p.Rating,
		Image:         p.Image,
		Featured:      p.Featured,
	}
}

// ToDomain Convert persistence object to domain model.
func (po ProductPO) ToDomain() catalog.Product {
	return catalog.Product{
		ID:            po.ID,
		Name:          po.Name,
		Description:   po.Description,
		Price:         shared.NewMoney(po.Price, po.Currency),
		OriginalPrice: shared.NewMoney(po.OriginalPrice, po.Currency),
		Category:      po.Category,
		Stock:         po.Stock,
		Rating:        po.Rating,
		Image:         po.Image,
		Featured:      po.Featured,
	}
}
