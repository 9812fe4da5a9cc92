package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// ProductRepository persists the products table. A missing products sheet is
// treated as an empty table with the default schema rather than an error.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListBySeller(ctx context.Context, sellerID int) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int) error
}
