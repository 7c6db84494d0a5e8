package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	"github.com/electrotrade/eterp_backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransferRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxTransferRepository creates a new repository for account transfers.
func newPgxTransferRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

// Helper to convert domain.AccountTransfer to models.AccountTransfer for DB insertion
func toModelAccountTransfer(d domain.AccountTransfer) models.AccountTransfer {
	return models.AccountTransfer{
		TransferID:    d.TransferID,
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		Amount:        d.Amount,
		TransferDate:  d.TransferDate,
		Notes:         d.Notes,
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

// Helper to convert models.AccountTransfer from DB to domain.AccountTransfer
func toDomainAccountTransfer(m models.AccountTransfer) domain.AccountTransfer {
	return domain.AccountTransfer{
		TransferID:    m.TransferID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Amount:        m.Amount,
		TransferDate:  m.TransferDate,
		Notes:         m.Notes,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

// transferBalanceChanges produces the two opposite balance mutations a
// transfer applies. The source account loses exactly the amount the
// destination gains, so the deltas always sum to zero.
func transferBalanceChanges(transfer domain.AccountTransfer) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		transfer.FromAccountID: transfer.Amount.Neg(),
		transfer.ToAccountID:   transfer.Amount,
	}
}

// CreateTransfer inserts the transfer row and applies the opposite balance
// mutations to both accounts inside one transaction. Both account rows are
// locked first so concurrent transfers serialize against each other.
func (r *PgxTransferRepository) CreateTransfer(ctx context.Context, transfer domain.AccountTransfer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	ids := []string{transfer.FromAccountID, transfer.ToAccountID}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, ids); err != nil {
		return err
	}

	modelTransfer := toModelAccountTransfer(transfer)
	query := `
		INSERT INTO account_transfers (transfer_id, from_account_id, to_account_id, amount, transfer_date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		modelTransfer.TransferID,
		modelTransfer.FromAccountID,
		modelTransfer.ToAccountID,
		modelTransfer.Amount,
		modelTransfer.TransferDate,
		modelTransfer.Notes,
		modelTransfer.CreatedAt,
		modelTransfer.CreatedBy,
		modelTransfer.LastUpdatedAt,
		modelTransfer.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transfer %s already exists", apperrors.ErrDuplicate, transfer.TransferID)
		}
		return fmt.Errorf("failed to insert transfer %s: %w", transfer.TransferID, err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, transferBalanceChanges(transfer), transfer.CreatedBy, transfer.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListTransfers retrieves a paginated list of transfers, newest first.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, limit int, offset int) ([]domain.AccountTransfer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT transfer_id, from_account_id, to_account_id, amount, transfer_date, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM account_transfers
		ORDER BY transfer_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.AccountTransfer{}
	for rows.Next() {
		var m models.AccountTransfer
		err := rows.Scan(
			&m.TransferID,
			&m.FromAccountID,
			&m.ToAccountID,
			&m.Amount,
			&m.TransferDate,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, toDomainAccountTransfer(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", rows.Err())
	}

	return transfers, nil
}
