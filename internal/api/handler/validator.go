package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request schemas.
type requestValidator struct {
	validate *validator.Validate
}

// NewValidator returns the validator wired into the router at startup.
func NewValidator() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate collapses all field failures into a single message, one clause per
// field, so the client sees every problem in one 400 response.
func (rv *requestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	clauses := make([]string, 0, len(fields))
	for _, f := range fields {
		name := strings.ToLower(f.Field())
		switch f.Tag() {
		case "required":
			clauses = append(clauses, name+" is required")
		case "email":
			clauses = append(clauses, name+" must be a valid email")
		case "oneof":
			clauses = append(clauses, fmt.Sprintf("%s must be one of: %s", name, f.Param()))
		default:
			clauses = append(clauses, fmt.Sprintf("%s is invalid (%s)", name, f.Tag()))
		}
	}
	return errors.New(strings.Join(clauses, "; "))
}
