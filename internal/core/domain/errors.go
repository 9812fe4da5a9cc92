package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrDuplicateUser signals that a (username, role) pair is already registered.
	ErrDuplicateUser = errors.New("user already exists for this role")

	// ErrInvalidCredentials is returned when no user row matches the exact
	// (username, password, role) triple presented at login.
	ErrInvalidCredentials = errors.New("invalid credentials or role")

	// ErrUnauthorized covers role mismatches and ownership violations.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation is returned when a required numeric field cannot be parsed.
	ErrValidation = errors.New("invalid value")

	// ErrTableNotFound is returned when the workbook has no sheet for a table
	// and the caller supplied no fallback schema.
	ErrTableNotFound = errors.New("table not found")
)
