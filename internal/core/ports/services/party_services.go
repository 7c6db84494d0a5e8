package services

import (
	"context"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/dto"
)

// PartySvcFacade defines operations for customers and suppliers.
type PartySvcFacade interface {
	// CreateParty registers a new customer or supplier.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error)

	// GetPartyByID retrieves a specific party by its unique identifier.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of active parties, optionally
	// filtered by type.
	ListParties(ctx context.Context, partyType domain.PartyType, limit int, offset int) ([]domain.Party, error)

	// RecordOpeningBalance establishes the party's baseline balance record.
	RecordOpeningBalance(ctx context.Context, partyID string, req dto.OpeningBalanceRequest, userID string) (*domain.OpeningBalance, error)

	// GetPartyStatement replays the party's derived ledger over an optional
	// date window.
	GetPartyStatement(ctx context.Context, partyID string, startDate, endDate *time.Time) (*domain.Statement, error)
}
