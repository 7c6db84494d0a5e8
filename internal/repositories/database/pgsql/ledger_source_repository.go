package pgsql

import (
	"context"
	"fmt"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerSourceRepository struct {
	BaseRepository
}

// newPgxLedgerSourceRepository creates a repository that pulls raw rows from
// every transaction table in the uniform shape the normalizer consumes.
func newPgxLedgerSourceRepository(pool *pgxpool.Pool) portsrepo.LedgerSourceRepository {
	return &PgxLedgerSourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerSourceRepository implements portsrepo.LedgerSourceRepository
var _ portsrepo.LedgerSourceRepository = (*PgxLedgerSourceRepository)(nil)

// accountSourcesQuery gathers every stored record that moves one account's
// balance. Transfers appear pre-split by direction so a single row can feed
// two account ledgers with opposite signs.
const accountSourcesQuery = `
	SELECT payment_id AS source_id,
	       CASE direction WHEN 'IN' THEN 'PAYMENT_IN' ELSE 'PAYMENT_OUT' END AS source_type,
	       payment_date AS entry_date, amount, reference, created_at
	FROM payments WHERE account_id = $1
	UNION ALL
	SELECT adjustment_id,
	       CASE direction WHEN 'IN' THEN 'ADJUSTMENT_IN' ELSE 'ADJUSTMENT_OUT' END,
	       entry_date, amount, reason, created_at
	FROM adjustments WHERE account_id = $1
	UNION ALL
	SELECT transfer_id, 'TRANSFER_OUT', transfer_date, amount, notes, created_at
	FROM account_transfers WHERE from_account_id = $1
	UNION ALL
	SELECT transfer_id, 'TRANSFER_IN', transfer_date, amount, notes, created_at
	FROM account_transfers WHERE to_account_id = $1
	UNION ALL
	SELECT opening_balance_id, 'OPENING_BALANCE', entry_date, amount, notes, created_at
	FROM opening_balances WHERE owner_type = 'ACCOUNT' AND owner_id = $1
`

// partySourcesQuery gathers every stored record that moves one party's
// derived balance.
const partySourcesQuery = `
	SELECT order_id AS source_id, 'SALE' AS source_type, order_date AS entry_date, total_amount AS amount, notes AS reference, created_at
	FROM sales_orders WHERE party_id = $1
	UNION ALL
	SELECT order_id, 'PURCHASE', order_date, total_amount, notes, created_at
	FROM purchase_orders WHERE party_id = $1
	UNION ALL
	SELECT payment_id,
	       CASE direction WHEN 'IN' THEN 'PAYMENT_IN' ELSE 'PAYMENT_OUT' END,
	       payment_date, amount, reference, created_at
	FROM payments WHERE party_id = $1
	UNION ALL
	SELECT return_id,
	       CASE return_type WHEN 'SALE' THEN 'SALE_RETURN' ELSE 'PURCHASE_RETURN' END,
	       return_date, amount, reference, created_at
	FROM returns WHERE party_id = $1
	UNION ALL
	SELECT opening_balance_id, 'OPENING_BALANCE', entry_date, amount, notes, created_at
	FROM opening_balances WHERE owner_type = 'PARTY' AND owner_id = $1
`

func collectSourceRecords(rows pgx.Rows) ([]domain.SourceRecord, error) {
	defer rows.Close()

	records := []domain.SourceRecord{}
	for rows.Next() {
		var rec domain.SourceRecord
		var sourceType string
		err := rows.Scan(&rec.SourceID, &sourceType, &rec.Date, &rec.Amount, &rec.Reference, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan source record row: %w", err)
		}
		rec.Type = domain.SourceType(sourceType)
		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating source record rows: %w", rows.Err())
	}
	return records, nil
}

// FindAccountSources returns every stored record affecting one account's balance.
func (r *PgxLedgerSourceRepository) FindAccountSources(ctx context.Context, accountID string) ([]domain.SourceRecord, error) {
	rows, err := r.Pool.Query(ctx, accountSourcesQuery, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account sources for %s: %w", accountID, err)
	}
	return collectSourceRecords(rows)
}

// FindPartySources returns every stored record affecting one party's derived balance.
func (r *PgxLedgerSourceRepository) FindPartySources(ctx context.Context, partyID string) ([]domain.SourceRecord, error) {
	rows, err := r.Pool.Query(ctx, partySourcesQuery, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query party sources for %s: %w", partyID, err)
	}
	return collectSourceRecords(rows)
}

// sourcesByPartyTypeQuery is the party sources query widened to every active
// party of one type, keyed by party ID.
const sourcesByPartyTypeQuery = `
	SELECT s.party_id, s.source_id, s.source_type, s.entry_date, s.amount, s.reference, s.created_at
	FROM (
		SELECT party_id, order_id AS source_id, 'SALE' AS source_type, order_date AS entry_date, total_amount AS amount, notes AS reference, created_at
		FROM sales_orders
		UNION ALL
		SELECT party_id, order_id, 'PURCHASE', order_date, total_amount, notes, created_at
		FROM purchase_orders
		UNION ALL
		SELECT party_id, payment_id,
		       CASE direction WHEN 'IN' THEN 'PAYMENT_IN' ELSE 'PAYMENT_OUT' END,
		       payment_date, amount, reference, created_at
		FROM payments
		UNION ALL
		SELECT party_id, return_id,
		       CASE return_type WHEN 'SALE' THEN 'SALE_RETURN' ELSE 'PURCHASE_RETURN' END,
		       return_date, amount, reference, created_at
		FROM returns
		UNION ALL
		SELECT owner_id, opening_balance_id, 'OPENING_BALANCE', entry_date, amount, notes, created_at
		FROM opening_balances WHERE owner_type = 'PARTY'
	) s
	JOIN parties p ON p.party_id = s.party_id
	WHERE p.is_active = TRUE AND p.party_type = $1
`

// FindSourcesByPartyType returns the source records of every active party of
// the given type, keyed by party ID.
func (r *PgxLedgerSourceRepository) FindSourcesByPartyType(ctx context.Context, partyType domain.PartyType) (map[string][]domain.SourceRecord, error) {
	rows, err := r.Pool.Query(ctx, sourcesByPartyTypeQuery, string(partyType))
	if err != nil {
		return nil, fmt.Errorf("failed to query sources for party type %s: %w", partyType, err)
	}
	return collectKeyedSourceRecords(rows)
}

// sourcesByAccountTypeQuery is the account sources query widened to every
// active account of one type, keyed by account ID.
const sourcesByAccountTypeQuery = `
	SELECT s.account_id, s.source_id, s.source_type, s.entry_date, s.amount, s.reference, s.created_at
	FROM (
		SELECT account_id, payment_id AS source_id,
		       CASE direction WHEN 'IN' THEN 'PAYMENT_IN' ELSE 'PAYMENT_OUT' END AS source_type,
		       payment_date AS entry_date, amount, reference, created_at
		FROM payments
		UNION ALL
		SELECT account_id, adjustment_id,
		       CASE direction WHEN 'IN' THEN 'ADJUSTMENT_IN' ELSE 'ADJUSTMENT_OUT' END,
		       entry_date, amount, reason, created_at
		FROM adjustments
		UNION ALL
		SELECT from_account_id, transfer_id, 'TRANSFER_OUT', transfer_date, amount, notes, created_at
		FROM account_transfers
		UNION ALL
		SELECT to_account_id, transfer_id, 'TRANSFER_IN', transfer_date, amount, notes, created_at
		FROM account_transfers
		UNION ALL
		SELECT owner_id, opening_balance_id, 'OPENING_BALANCE', entry_date, amount, notes, created_at
		FROM opening_balances WHERE owner_type = 'ACCOUNT'
	) s
	JOIN accounts a ON a.account_id = s.account_id
	WHERE a.is_active = TRUE AND a.account_type = $1
`

// FindSourcesByAccountType returns the source records of every active account
// of the given type, keyed by account ID.
func (r *PgxLedgerSourceRepository) FindSourcesByAccountType(ctx context.Context, accountType domain.AccountType) (map[string][]domain.SourceRecord, error) {
	rows, err := r.Pool.Query(ctx, sourcesByAccountTypeQuery, string(accountType))
	if err != nil {
		return nil, fmt.Errorf("failed to query sources for account type %s: %w", accountType, err)
	}
	return collectKeyedSourceRecords(rows)
}

func collectKeyedSourceRecords(rows pgx.Rows) (map[string][]domain.SourceRecord, error) {
	defer rows.Close()

	byEntity := map[string][]domain.SourceRecord{}
	for rows.Next() {
		var entityID string
		var rec domain.SourceRecord
		var sourceType string
		err := rows.Scan(&entityID, &rec.SourceID, &sourceType, &rec.Date, &rec.Amount, &rec.Reference, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan keyed source record row: %w", err)
		}
		rec.Type = domain.SourceType(sourceType)
		byEntity[entityID] = append(byEntity[entityID], rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating keyed source record rows: %w", rows.Err())
	}
	return byEntity, nil
}
