package repositories

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// PartyReader defines read operations for party data.
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of active parties, optionally
	// filtered by type (empty type means all).
	ListParties(ctx context.Context, partyType domain.PartyType, limit int, offset int) ([]domain.Party, error)

	// FindPartiesByType retrieves all active parties of the given type,
	// unpaginated. Used by ledger-wide reports.
	FindPartiesByType(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data.
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// RecordOpeningBalance inserts an opening balance record for a party.
	// Party balances are derived, so no stored balance is touched.
	RecordOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error
}

// PartyRepositoryFacade combines all party-related repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
