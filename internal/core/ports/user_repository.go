package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// UserRepository persists the users table.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	// FindByUsernameAndRole is the duplicate-registration probe.
	FindByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*domain.User, error)
	// FindByCredentials requires an exact match of all three fields against
	// trimmed cell values.
	FindByCredentials(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	// Create assigns the next id (max existing + 1, or 1 on an empty table),
	// appends, and rewrites the table.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
