package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/krishivishwa/storefront/domain/catalog"
	"github.com/krishivishwa/storefront/infrastructure/persistence/mysql/po"
)

// ProductRepository MySQL/GORM implementation of the catalog repository.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository Create product repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAll Return every product; filtering and sorting happen in the
// domain so memory and mysql behave identically.
func (r *ProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var pos []po.ProductPO
	if err := r.db.WithContext(ctx).Order("id").Find(&pos).Error; err != nil {
		return nil, err
	}

	products := make([]catalog.Product, len(pos))
	for i, p := range pos {
		products[i] = p.ToDomain()
	}
	return products, nil
}

// FindByID Find a product by id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	var p po.ProductPO
	result := r.db.WithContext(ctx).First(&p, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return catalog.Product{}, result.Error
	}
	return p.ToDomain(), nil
}

// Categories Return category names with product counts.
func (r *ProductRepository) Categories(ctx context.Context) ([]catalog.Category, error) {
	var rows []struct {
		Category string
		Count    int
	}
	err := r.db.WithContext(ctx).
		Model(&po.ProductPO{}).
		Select("category, count(*) as count").
		Group("category").
		Order("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]catalog.Category, len(rows))
	for i, row := range rows {
		categories[i] = catalog.Category{Name: row.Category, ProductCount: row.Count}
	}
	return categories, nil
}
