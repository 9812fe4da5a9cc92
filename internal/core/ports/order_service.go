package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// OrderInput carries order form fields as raw strings. ProductID must parse
// to an integer; an empty Quantity defaults to 1.
type OrderInput struct {
	ProductID string
	Quantity  string
}

// OrderService defines the order use cases. Creation binds the order to the
// session's user id; update and delete are not ownership-restricted, which
// mirrors the legacy behavior and is recorded as a known gap.
type OrderService interface {
	ListForCustomer(ctx context.Context, session domain.Session) ([]domain.Order, error)
	Create(ctx context.Context, session domain.Session, in OrderInput) (*domain.Order, error)
	Update(ctx context.Context, id int, in OrderInput) (*domain.Order, error)
	Delete(ctx context.Context, id int) error
}
