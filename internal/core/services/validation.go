package services

import (
	"fmt"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// parseAmount strictly parses a money amount from its wire string. Unlike the
// safe-zero policy of the arithmetic layer, user-provided amounts on write
// paths are validated and rejected before any mutation.
func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a decimal amount, got %q", apperrors.ErrValidation, field, value)
	}
	return d, nil
}

// parsePositiveAmount parses an amount that must be strictly greater than
// zero.
func parsePositiveAmount(field, value string) (decimal.Decimal, error) {
	d, err := parseAmount(field, value)
	if err != nil {
		return decimal.Zero, err
	}
	if d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrValidation, field)
	}
	return d, nil
}
