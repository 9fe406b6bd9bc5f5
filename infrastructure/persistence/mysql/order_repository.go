package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/krishivishwa/storefront/domain/order"
	"github.com/krishivishwa/storefront/infrastructure/persistence/mysql/po"
)

// OrderRepository MySQL/GORM implementation of the order repository.
// Order and item rows are managed by hand to keep the aggregate boundary
// out of GORM's hands.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository Create order repository.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save Persist a new order and its items atomically.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	orderPO, itemPOs := po.FromOrderDomain(o)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(orderPO).Error; err != nil {
			return err
		}
		if len(itemPOs) > 0 {
			if err := tx.Create(&itemPOs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID Find an order with its items.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	db := r.db.WithContext(ctx)

	var orderPO po.OrderPO
	result := db.First(&orderPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, result.Error
	}

	var itemPOs []po.OrderItemPO
	if err := db.Where("order_id = ?", id).Find(&itemPOs).Error; err != nil {
		return nil, err
	}

	return orderPO.ToDomain(itemPOs), nil
}

// FindAll Return all orders, newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	db := r.db.WithContext(ctx)

	var orderPOs []po.OrderPO
	if err := db.Order("created_at desc").Find(&orderPOs).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(orderPOs))
	for i, orderPO := range orderPOs {
		var itemPOs []po.OrderItemPO
		if err := db.Where("order_id = ?", orderPO.ID).Find(&itemPOs).Error; err != nil {
			return nil, err
		}
		orders[i] = orderPO.ToDomain(itemPOs)
	}
	return orders, nil
}

// UpdateStatus Persist a status transition.
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).
		Model(&po.OrderPO{}).
		Where("id = ?", o.ID()).
		Update("status", string(o.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}
