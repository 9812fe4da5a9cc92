package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// OrderRepository persists the orders table.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error)
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int) error
}
