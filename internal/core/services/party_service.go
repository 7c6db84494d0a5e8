package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/electrotrade/eterp_backend/internal/utils/ledgercalc"
	"github.com/google/uuid"
)

// partyService implements the PartySvcFacade interface.
type partyService struct {
	BaseService
	partyRepo  portsrepo.PartyRepositoryFacade
	sourceRepo portsrepo.LedgerSourceRepository
}

// NewPartyService creates a new party service.
func NewPartyService(
	partyRepo portsrepo.PartyRepositoryFacade,
	sourceRepo portsrepo.LedgerSourceRepository,
) portssvc.PartySvcFacade {
	return &partyService{
		partyRepo:  partyRepo,
		sourceRepo: sourceRepo,
	}
}

// Ensure partyService implements the PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty registers a new customer or supplier.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	now := time.Now().UTC()
	party := domain.Party{
		PartyID:   uuid.NewString(),
		Name:      req.Name,
		PartyType: req.PartyType,
		Phone:     req.Phone,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("party_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Party created",
		slog.String("party_id", party.PartyID),
		slog.String("party_type", string(party.PartyType)))
	return &party, nil
}

// GetPartyByID retrieves a specific party.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

// ListParties retrieves a paginated list of active parties.
func (s *partyService) ListParties(ctx context.Context, partyType domain.PartyType, limit int, offset int) ([]domain.Party, error) {
	return s.partyRepo.ListParties(ctx, partyType, limit, offset)
}

// RecordOpeningBalance establishes the party's baseline balance record. Party
// balances are derived by replay, so only the record is inserted.
func (s *partyService) RecordOpeningBalance(ctx context.Context, partyID string, req dto.OpeningBalanceRequest, userID string) (*domain.OpeningBalance, error) {
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	entryDate, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ob := domain.OpeningBalance{
		OpeningBalanceID: uuid.NewString(),
		OwnerType:        domain.PartyOwner,
		OwnerID:          partyID,
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

	if err := s.partyRepo.RecordOpeningBalance(ctx, ob); err != nil {
		s.LogError(ctx, err, "Failed to record party opening balance", slog.String("party_id", partyID))
		return nil, err
	}

	s.LogInfo(ctx, "Party opening balance recorded",
		slog.String("party_id", partyID),
		slog.String("amount", amount.String()))
	return &ob, nil
}

// GetPartyStatement replays the party's derived ledger over an optional
// window.
func (s *partyService) GetPartyStatement(ctx context.Context, partyID string, startDate, endDate *time.Time) (*domain.Statement, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return nil, err
	}

	records, err := s.sourceRepo.FindPartySources(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load party sources", slog.String("party_id", partyID))
		return nil, err
	}

	entries, dropped := ledgercalc.Normalize(records, ledgercalc.PartyPerspective)
	if dropped > 0 {
		s.LogWarn(ctx, "Source records without a date excluded from statement",
			slog.String("party_id", partyID),
			slog.Int("dropped", dropped))
	}

	statement := ledgercalc.RunningBalance(entries, ledgercalc.PartyPerspective, ledgercalc.Window{Start: startDate, End: endDate})
	return &statement, nil
}
