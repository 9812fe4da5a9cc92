package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// AuthenticateInput carries the raw login form fields. All three are trimmed
// before matching; the password is compared verbatim against the stored cell.
type AuthenticateInput struct {
	Username string
	Password string
	Role     string
}

// AuthResult is returned on a successful login.
type AuthResult struct {
	Token   string
	Session domain.Session
	User    *domain.User
}

// RegisterCustomerInput carries the registration form fields. Registration
// writes a users row and a customers row sharing the same id.
type RegisterCustomerInput struct {
	Username string
	Password string
	Role     string
	Email    string
	Phone    string
	Address  string
}

// RegisterResult reports the ids assigned during registration. UserID and
// CustomerID are always equal in the current design.
type RegisterResult struct {
	UserID     int
	CustomerID int
}

// AuthService implements login, registration, and logout.
type AuthService interface {
	Authenticate(ctx context.Context, in AuthenticateInput) (*AuthResult, error)
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*RegisterResult, error)
	// Logout revokes the presented token for the remainder of its lifetime.
	Logout(ctx context.Context, token string) error
}
