package services

import (
	"context"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of active accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// GetAccountStatement replays the account's ledger over an optional date
	// window, producing entries annotated with running balances plus the
	// window's opening and closing balances.
	GetAccountStatement(ctx context.Context, accountID string, startDate, endDate *time.Time) (*domain.Statement, error)
}

// AccountWriterSvc defines write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// RecordOpeningBalance establishes the account's baseline balance.
	RecordOpeningBalance(ctx context.Context, accountID string, req dto.OpeningBalanceRequest, userID string) (*domain.OpeningBalance, error)

	// RecordAdjustment applies a manual correction with a mandatory reason.
	RecordAdjustment(ctx context.Context, accountID string, req dto.AdjustmentRequest, userID string) (*domain.Adjustment, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
