package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// ProductInput carries product form fields. Price, Stock, and Rating arrive
// as raw strings: an empty value defaults to zero, anything unparsable fails
// with a validation error.
type ProductInput struct {
	Name     string
	Price    string
	Stock    string
	Category string
	Details  string
	Rating   string
	ImageURL string
}

// ProductService defines the catalog use cases. Mutations are guarded: only
// sellers create products, and only the listing seller updates or deletes one.
type ProductService interface {
	// List returns the full catalog, optionally filtered by a
	// case-insensitive substring match on the product name.
	List(ctx context.Context, nameFilter string) ([]domain.Product, error)
	ListOwned(ctx context.Context, session domain.Session) ([]domain.Product, error)
	Create(ctx context.Context, session domain.Session, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, session domain.Session, id int, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, session domain.Session, id int) error
}
