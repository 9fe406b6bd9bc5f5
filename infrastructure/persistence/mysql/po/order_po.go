package po

import (
	"fmt"
	"time"

	"github.com/krishivishwa/storefront/domain/cart"
	"github.com/krishivishwa/storefront/domain/checkout"
	"github.com/krishivishwa/storefront/domain/order"
	"github.com/krishivishwa/storefront/domain/shared"
)

// OrderPO Order persistence object. Customer and payment fields are
// flattened; line items live in their own table keyed by order id only.
type OrderPO struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Status        string    `gorm:"size:20;not null;index"`
	Subtotal      int64     `gorm:"not null"`
	ShippingFee   int64     `gorm:"not null"`
	Tax           int64     `gorm:"not null"`
	CODSurcharge  int64     `gorm:"not null"`
	Total         int64     `gorm:"not null"`
	Currency      string    `gorm:"size:3;not null"`
	FirstName     string    `gorm:"size:100;not null"`
	LastName      string    `gorm:"size:100;not null"`
	Email         string    `gorm:"size:255;not null"`
	Phone         string    `gorm:"size:20;not null"`
	Address       string    `gorm:"size:512;not null"`
	City          string    `gorm:"size:100;not null"`
	State         string    `gorm:"size:100;not null"`
	ZipCode       string    `gorm:"size:20;not null"`
	Country       string    `gorm:"size:100;not null"`
	Instructions  string    `gorm:"type:text"`
	PaymentMethod string    `gorm:"size:20;not null"`
	TransactionID string    `gorm:"size:100"`
	HasScreenshot bool      `gorm:"default:false"`
	ScreenshotRef string    `gorm:"size:512"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

func (OrderPO) TableName() string { return "orders" }

// OrderItemPO Order line persistence object.
type OrderItemPO struct {
	ID          string `gorm:"primaryKey;size:128"`
	OrderID     string `gorm:"size:64;index;not null"`
	ProductID   string `gorm:"size:64;not null"`
	ProductName string `gorm:"size:255;not null"`
	UnitPrice   int64  `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Subtotal    int64  `gorm:"not null"`
	Currency    string `gorm:"size:3;not null"`
	Image       string `gorm:"size:512"`
}

func (OrderItemPO) TableName() string { return "order_items" }

// FromOrderDomain Convert domain model to persistence objects.
func FromOrderDomain(o *order.Order) (*OrderPO, []OrderItemPO) {
	totals := o.Totals()
	customer := o.Customer()
	payment := o.Payment()

	orderPO := &OrderPO{
		ID:            o.ID(),
		Status:        string(o.Status()),
		Subtotal:      totals.Subtotal.Amount(),
		ShippingFee:   totals.ShippingFee.Amount(),
		Tax:           totals.Tax.Amount(),
		CODSurcharge:  totals.CODSurcharge.Amount(),
		Total:         totals.Total.Amount(),
		Currency:      totals.Total.Currency(),
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Address:       customer.Address,
		City:          customer.City,
		State:         customer.State,
		ZipCode:       customer.ZipCode,
		Country:       customer.Country,
		Instructions:  customer.SpecialInstructions,
		PaymentMethod: string(payment.Method),
		TransactionID: payment.TransactionID,
		HasScreenshot: payment.HasScreenshot,
		ScreenshotRef: payment.ScreenshotRef,
		CreatedAt:     o.CreatedAt(),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, item := range items {
		itemPOs[i] = OrderItemPO{
			ID:          fmt.Sprintf("%s-%s", o.ID(), item.ProductID()),
			OrderID:     o.ID(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Amount(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal().Amount(),
			Currency:    item.Subtotal().Currency(),
			Image:       item.Image(),
		}
	}

	return orderPO, itemPOs
}

// ToDomain Convert persistence objects to domain model.
func (po *OrderPO) ToDomain(itemPOs []OrderItemPO) *order.Order {
	records := make([]order.ItemRecord, len(itemPOs))
	for i, item := range itemPOs {
		records[i] = order.ItemRecord{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   shared.NewMoney(item.UnitPrice, item.Currency),
			Quantity:    item.Quantity,
			Subtotal:    shared.NewMoney(item.Subtotal, item.Currency),
			Image:       item.Image,
		}
	}

	totals := cart.Totals{
		Subtotal:     shared.NewMoney(po.Subtotal, po.Currency),
		ShippingFee:  shared.NewMoney(po.ShippingFee, po.Currency),
		Tax:          shared.NewMoney(po.Tax, po.Currency),
		CODSurcharge: shared.NewMoney(po.CODSurcharge, po.Currency),
		Total:        shared.NewMoney(po.Total, po.Currency),
	}

	customer := checkout.ShippingInfo{
		FirstName:           po.FirstName,
		LastName:            po.LastName,
		Email:               po.Email,
		Phone:               po.Phone,
		Address:             po.Address,
		City:                po.City,
		State:               po.State,
		ZipCode:             po.ZipCode,
		Country:             po.Country,
		SpecialInstructions: po.Instructions,
	}

	payment := order.PaymentData{
		Method:        cart.PaymentMethod(po.PaymentMethod),
		TransactionID: po.TransactionID,
		HasScreenshot: po.HasScreenshot,
		ScreenshotRef: po.ScreenshotRef,
	}

	return order.Reconstitute(po.ID, records, totals, customer, payment, order.Status(po.Status), po.CreatedAt)
}
