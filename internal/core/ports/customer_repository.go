package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// CustomerRepository persists the customers table.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	// Create appends the customer and rewrites the table. A zero ID is
	// replaced with the next id; a non-zero ID is kept as-is, which is how
	// registration shares one id between the user and customer rows.
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
}
