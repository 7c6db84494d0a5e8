package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/electrotrade/eterp_backend/internal/utils/ledgercalc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	sourceRepo   portsrepo.LedgerSourceRepository
}

// NewAccountService creates a new account service.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	sourceRepo portsrepo.LedgerSourceRepository,
) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		sourceRepo:   sourceRepo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates the request and persists a new account with a zero
// balance. Balances are only ever mutated by opening balances, adjustments,
// transfers and linked payments.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		s.LogWarn(ctx, "Unknown currency on account creation", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("%w: currency %s is not registered", apperrors.ErrValidation, req.CurrencyCode)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         req.Name,
		AccountType:  req.AccountType,
		CurrencyCode: req.CurrencyCode,
		Description:  req.Description,
		IsActive:     true,
		Balance:      decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves a paginated list of active accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// RecordOpeningBalance establishes the account's baseline balance. The insert
// and the balance mutation commit atomically in the repository.
func (s *accountService) RecordOpeningBalance(ctx context.Context, accountID string, req dto.OpeningBalanceRequest, userID string) (*domain.OpeningBalance, error) {
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	entryDate, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ob := domain.OpeningBalance{
		OpeningBalanceID: uuid.NewString(),
		OwnerType:        domain.AccountOwner,
		OwnerID:          accountID,
		Amount:           amount,
		EntryDate:        entryDate,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.RecordOpeningBalance(ctx, ob); err != nil {
		s.LogError(ctx, err, "Failed to record opening balance", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Opening balance recorded",
		slog.String("account_id", accountID),
		slog.String("amount", amount.String()))
	return &ob, nil
}

// RecordAdjustment applies a manual correction. The reason is a mandatory
// audit trail requirement and is validated again here in case the transport
// layer let an all-whitespace value through.
func (s *accountService) RecordAdjustment(ctx context.Context, accountID string, req dto.AdjustmentRequest, userID string) (*domain.Adjustment, error) {
	amount, err := parsePositiveAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	entryDate, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required for an adjustment", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	adj := domain.Adjustment{
		AdjustmentID: uuid.NewString(),
		AccountID:    accountID,
		Amount:       amount,
		Direction:    domain.AdjustmentDirection(req.Direction),
		EntryDate:    entryDate,
		Reason:       strings.TrimSpace(req.Reason),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.RecordAdjustment(ctx, adj); err != nil {
		s.LogError(ctx, err, "Failed to record adjustment", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Adjustment recorded",
		slog.String("account_id", accountID),
		slog.String("direction", string(adj.Direction)),
		slog.String("amount", amount.String()))
	return &adj, nil
}

// GetAccountStatement replays the account's ledger over an optional window.
func (s *accountService) GetAccountStatement(ctx context.Context, accountID string, startDate, endDate *time.Time) (*domain.Statement, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	records, err := s.sourceRepo.FindAccountSources(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account sources", slog.String("account_id", accountID))
		return nil, err
	}

	entries, dropped := ledgercalc.Normalize(records, ledgercalc.AccountPerspective)
	if dropped > 0 {
		s.LogWarn(ctx, "Source records without a date excluded from statement",
			slog.String("account_id", accountID),
			slog.Int("dropped", dropped))
	}

	statement := ledgercalc.RunningBalance(entries, ledgercalc.AccountPerspective, ledgercalc.Window{Start: startDate, End: endDate})
	return &statement, nil
}
