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

type PgxPaymentRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxPaymentRepository creates a new repository for payments and returns.
// It needs account transaction support because a payment moves the linked
// account balance in the same transaction as its insert.
func newPgxPaymentRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// Helper to convert domain.Payment to models.Payment for DB insertion
func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		PartyID:     d.PartyID,
		AccountID:   d.AccountID,
		Direction:   string(d.Direction),
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		Reference:   d.Reference,
		Notes:       d.Notes,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

// Helper to convert models.Payment from DB to domain.Payment
func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		PartyID:     m.PartyID,
		AccountID:   m.AccountID,
		Direction:   domain.PaymentDirection(m.Direction),
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Reference:   m.Reference,
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

func toModelReturnRecord(d domain.ReturnRecord) models.ReturnRecord {
	return models.ReturnRecord{
		ReturnID:    d.ReturnID,
		PartyID:     d.PartyID,
		ReturnType:  string(d.ReturnType),
		Amount:      d.Amount,
		ReturnDate:  d.ReturnDate,
		Reference:   d.Reference,
		Notes:       d.Notes,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

func toDomainReturnRecord(m models.ReturnRecord) domain.ReturnRecord {
	return domain.ReturnRecord{
		ReturnID:    m.ReturnID,
		PartyID:     m.PartyID,
		ReturnType:  domain.ReturnType(m.ReturnType),
		Amount:      m.Amount,
		ReturnDate:  m.ReturnDate,
		Reference:   m.Reference,
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// paymentBalanceChange is the signed effect of a payment on its linked
// account: IN adds the amount, OUT subtracts it.
func paymentBalanceChange(payment domain.Payment) map[string]decimal.Decimal {
	delta := payment.Amount
	if payment.Direction == domain.PaymentOut {
		delta = delta.Neg()
	}
	return map[string]decimal.Decimal{payment.AccountID: delta}
}

// SavePayment inserts the payment and applies its effect to the linked
// account balance atomically.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{payment.AccountID}); err != nil {
		return err
	}

	modelPayment := toModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, party_id, account_id, direction, amount, payment_date, reference, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.PartyID,
		modelPayment.AccountID,
		modelPayment.Direction,
		modelPayment.Amount,
		modelPayment.PaymentDate,
		modelPayment.Reference,
		modelPayment.Notes,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, payment.PaymentID)
		}
		return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, paymentBalanceChange(payment), payment.CreatedBy, payment.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ListPayments retrieves a paginated list of payments, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT payment_id, party_id, account_id, direction, amount, payment_date, reference, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		err := rows.Scan(
			&m.PaymentID,
			&m.PartyID,
			&m.AccountID,
			&m.Direction,
			&m.Amount,
			&m.PaymentDate,
			&m.Reference,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	return payments, nil
}

// SaveReturn inserts a return record. Returns only affect derived party
// balances, so no account row is touched.
func (r *PgxPaymentRepository) SaveReturn(ctx context.Context, ret domain.ReturnRecord) error {
	modelRet := toModelReturnRecord(ret)
	query := `
		INSERT INTO returns (return_id, party_id, return_type, amount, return_date, reference, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRet.ReturnID,
		modelRet.PartyID,
		modelRet.ReturnType,
		modelRet.Amount,
		modelRet.ReturnDate,
		modelRet.Reference,
		modelRet.Notes,
		modelRet.CreatedAt,
		modelRet.CreatedBy,
		modelRet.LastUpdatedAt,
		modelRet.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: return %s already exists", apperrors.ErrDuplicate, ret.ReturnID)
		}
		return fmt.Errorf("failed to insert return %s: %w", ret.ReturnID, err)
	}
	return nil
}

// ListReturns retrieves a paginated list of returns, newest first.
func (r *PgxPaymentRepository) ListReturns(ctx context.Context, limit int, offset int) ([]domain.ReturnRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT return_id, party_id, return_type, amount, return_date, reference, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM returns
		ORDER BY return_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query returns: %w", err)
	}
	defer rows.Close()

	returns := []domain.ReturnRecord{}
	for rows.Next() {
		var m models.ReturnRecord
		err := rows.Scan(
			&m.ReturnID,
			&m.PartyID,
			&m.ReturnType,
			&m.Amount,
			&m.ReturnDate,
			&m.Reference,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return row: %w", err)
		}
		returns = append(returns, toDomainReturnRecord(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating return rows: %w", rows.Err())
	}

	return returns, nil
}
