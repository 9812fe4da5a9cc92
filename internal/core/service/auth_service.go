package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/ports"
	"github.com/minimarket/catalog-api/internal/metrics"
)

// TokenRevoker abstracts the logout denylist (Redis).
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// AuthService implements login, registration, and logout over the users and
// customers tables.
type AuthService struct {
	users     ports.UserRepository
	customers ports.CustomerRepository
	revoker   TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	customers ports.CustomerRepository,
	revoker TokenRevoker,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		customers: customers,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Authenticate matches the trimmed (username, password, role) triple exactly
// against the users table. The password comparison is plain equality: that is
// the system's documented contract, not an oversight to repair here.
func (s *AuthService) Authenticate(ctx context.Context, in ports.AuthenticateInput) (*ports.AuthResult, error) {
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		metrics.LoginsTotal.WithLabelValues(in.Role, "failure").Inc()
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, in.Role)
	}

	user, err := s.users.FindByCredentials(ctx, strings.TrimSpace(in.Username), strings.TrimSpace(in.Password), role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(role), "failure").Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	s.log.Info().Int("user_id", user.ID).Str("role", string(role)).Msg("login")

	return &ports.AuthResult{
		Token:   token,
		Session: domain.Session{UserID: user.ID, Role: user.Role},
		User:    user,
	}, nil
}

// RegisterCustomer writes a users row and a customers row sharing one id.
// The two writes are separate table rewrites with no shared transaction; if
// the customers write fails the users row is compensated away so no orphaned
// login is left behind.
func (s *AuthService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) (*ports.RegisterResult, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, in.Role)
	}

	_, err := s.users.FindByUsernameAndRole(ctx, username, role)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateUser
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrTableNotFound):
		// first registration may precede the users sheet itself
	default:
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:      user.ID,
		Name:    username,
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if _, err := s.customers.Create(ctx, customer); err != nil {
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			s.log.Error().Err(delErr).Int("user_id", user.ID).Msg("registration rollback failed, orphaned user row")
		}
		return nil, fmt.Errorf("register customer row: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Int("user_id", user.ID).Str("role", string(role)).Msg("registered")

	return &ports.RegisterResult{UserID: user.ID, CustomerID: customer.ID}, nil
}

// Logout revokes the presented token until its natural expiry. Tokens that
// fail to parse or are already expired are treated as logged out.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}

	if s.revoker == nil {
		return nil
	}
	return s.revoker.Revoke(ctx, token, ttl)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
