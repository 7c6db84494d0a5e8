package dto

import (
	"fmt"
	"time"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
)

// DateLayout is the wire format for dates in request and response bodies.
const DateLayout = "2006-01-02"

// ParseDate parses a required YYYY-MM-DD date string.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date, got %q", apperrors.ErrValidation, field, value)
	}
	return t, nil
}

// ParseOptionalDate parses an optional date query parameter; empty input
// yields a nil time.
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListParams defines the shared limit/offset query parameters for listing
// endpoints.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
