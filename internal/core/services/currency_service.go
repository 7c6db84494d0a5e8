package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
)

// currencyService implements the CurrencySvcFacade interface.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// Ensure currencyService implements the CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency registers a currency with its display precision.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.Currency, error) {
	now := time.Now().UTC()
	currency := domain.Currency{
		Code:          strings.ToUpper(req.Code),
		Name:          req.Name,
		DecimalPlaces: req.DecimalPlaces,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("code", currency.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Currency created", slog.String("code", currency.Code))
	return &currency, nil
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
}

// ListCurrencies retrieves all registered currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}
