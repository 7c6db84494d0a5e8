package repositories

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// LedgerSourceRepository pulls raw transaction rows from every source table
// in the uniform SourceRecord shape the normalizer consumes.
type LedgerSourceRepository interface {
	// FindAccountSources returns every stored record affecting one account's
	// balance: payments, adjustments, transfers (pre-split by direction) and
	// opening balances.
	FindAccountSources(ctx context.Context, accountID string) ([]domain.SourceRecord, error)

	// FindPartySources returns every stored record affecting one party's
	// derived balance: orders, payments, returns and opening balances.
	FindPartySources(ctx context.Context, partyID string) ([]domain.SourceRecord, error)

	// FindSourcesByPartyType returns the source records of every active party
	// of the given type, keyed by party ID. Used by the aging and financial
	// standing reports.
	FindSourcesByPartyType(ctx context.Context, partyType domain.PartyType) (map[string][]domain.SourceRecord, error)

	// FindSourcesByAccountType returns the source records of every active
	// account of the given type, keyed by account ID.
	FindSourcesByAccountType(ctx context.Context, accountType domain.AccountType) (map[string][]domain.SourceRecord, error)
}
