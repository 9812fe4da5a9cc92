package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// CustomerInput carries the customer form fields.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerService defines the standalone customer CRUD used by the admin
// screens, independent of registration.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}
