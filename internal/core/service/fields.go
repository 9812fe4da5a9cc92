package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// Numeric form fields arrive as raw strings. An empty value falls back to the
// given default; anything unparsable is a validation failure.

func parseFloatField(value, field string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", domain.ErrValidation, field, value)
	}
	return f, nil
}

func parseIntField(value, field string, def int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", domain.ErrValidation, field, value)
	}
	return n, nil
}
