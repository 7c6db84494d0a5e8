package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	"github.com/electrotrade/eterp_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func toModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:   d.PartyID,
		Name:      d.Name,
		PartyType: string(d.PartyType),
		Phone:     d.Phone,
		IsActive:  d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:   m.PartyID,
		Name:      m.Name,
		PartyType: domain.PartyType(m.PartyType),
		Phone:     m.Phone,
		IsActive:  m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const partyColumns = `party_id, name, party_type, phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.Name,
		&m.PartyType,
		&m.Phone,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveParty inserts a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	modelParty := toModelParty(party)

	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelParty.PartyID,
		modelParty.Name,
		modelParty.PartyType,
		modelParty.Phone,
		modelParty.IsActive,
		modelParty.CreatedAt,
		modelParty.CreatedBy,
		modelParty.LastUpdatedAt,
		modelParty.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: party with ID %s already exists", apperrors.ErrDuplicate, modelParty.PartyID)
		}
		return fmt.Errorf("failed to save party %s: %w", modelParty.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE party_id = $1;
	`
	modelParty, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}

	domainParty := toDomainParty(modelParty)
	return &domainParty, nil
}

// ListParties retrieves a paginated list of active parties, optionally
// filtered by type.
func (r *PgxPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType, limit int, offset int) ([]domain.Party, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE is_active = TRUE AND ($1 = '' OR party_type = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, string(partyType), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		modelParty, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, toDomainParty(modelParty))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", rows.Err())
	}

	return parties, nil
}

// FindPartiesByType retrieves all active parties of the given type.
func (r *PgxPartyRepository) FindPartiesByType(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE is_active = TRUE AND party_type = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, string(partyType))
	if err != nil {
		return nil, fmt.Errorf("failed to query parties by type %s: %w", partyType, err)
	}
	defer rows.Close()

	parties := []domain.Party{}
	for rows.Next() {
		modelParty, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, toDomainParty(modelParty))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", rows.Err())
	}

	return parties, nil
}

// RecordOpeningBalance inserts an opening balance record for a party. Party
// balances are derived by replay, so nothing else is touched.
func (r *PgxPartyRepository) RecordOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertOpeningBalance(ctx, tx, ob); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
