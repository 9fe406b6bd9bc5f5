package catalog

import "context"

// Repository Catalog repository interface
type Repository interface {
	// FindAll Return every product in the catalog
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID Find a product by id; ErrProductNotFound when absent
	FindByID(ctx context.Context, id string) (Product, error)

	// Categories Return category names with product counts
	Categories(ctx context.Context) ([]Category, error)
}
