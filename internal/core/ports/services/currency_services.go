package services

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/dto"
)

// CurrencySvcFacade defines operations for currency metadata.
type CurrencySvcFacade interface {
	// CreateCurrency registers a currency with its display precision.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all registered currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
