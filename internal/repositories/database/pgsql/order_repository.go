package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	"github.com/electrotrade/eterp_backend/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for sale and purchase orders.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func marshalOrderLines(lines []domain.OrderLine) ([]byte, error) {
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order lines: %w", err)
	}
	return raw, nil
}

func unmarshalOrderLines(raw []byte) ([]domain.OrderLine, error) {
	if len(raw) == 0 {
		return []domain.OrderLine{}, nil
	}
	var lines []domain.OrderLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order lines: %w", err)
	}
	return lines, nil
}

// Helper to convert domain.SaleOrder to models.SaleOrder for DB insertion
func toModelSaleOrder(d domain.SaleOrder) (models.SaleOrder, error) {
	rawLines, err := marshalOrderLines(d.Lines)
	if err != nil {
		return models.SaleOrder{}, err
	}
	return models.SaleOrder{
		OrderID:     d.OrderID,
		PartyID:     d.PartyID,
		OrderDate:   d.OrderDate,
		Lines:       rawLines,
		TotalAmount: d.TotalAmount,
		CostTotal:   d.CostTotal,
		Notes:       d.Notes,
		AuditFields: toModelAuditFields(d.AuditFields),
	}, nil
}

// Helper to convert models.SaleOrder from DB to domain.SaleOrder
func toDomainSaleOrder(m models.SaleOrder) (domain.SaleOrder, error) {
	lines, err := unmarshalOrderLines(m.Lines)
	if err != nil {
		return domain.SaleOrder{}, err
	}
	return domain.SaleOrder{
		OrderID:     m.OrderID,
		PartyID:     m.PartyID,
		OrderDate:   m.OrderDate,
		Lines:       lines,
		TotalAmount: m.TotalAmount,
		CostTotal:   m.CostTotal,
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}, nil
}

func toModelPurchaseOrder(d domain.PurchaseOrder) (models.PurchaseOrder, error) {
	rawLines, err := marshalOrderLines(d.Lines)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	return models.PurchaseOrder{
		OrderID:     d.OrderID,
		PartyID:     d.PartyID,
		OrderDate:   d.OrderDate,
		Lines:       rawLines,
		TotalAmount: d.TotalAmount,
		Status:      string(d.Status),
		Notes:       d.Notes,
		AuditFields: toModelAuditFields(d.AuditFields),
	}, nil
}

func toDomainPurchaseOrder(m models.PurchaseOrder) (domain.PurchaseOrder, error) {
	lines, err := unmarshalOrderLines(m.Lines)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	return domain.PurchaseOrder{
		OrderID:     m.OrderID,
		PartyID:     m.PartyID,
		OrderDate:   m.OrderDate,
		Lines:       lines,
		TotalAmount: m.TotalAmount,
		Status:      domain.PurchaseStatus(m.Status),
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}, nil
}

// SaveSaleOrder inserts a new sale order.
func (r *PgxOrderRepository) SaveSaleOrder(ctx context.Context, order domain.SaleOrder) error {
	modelOrder, err := toModelSaleOrder(order)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sales_orders (order_id, party_id, order_date, lines, total_amount, cost_total, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = r.Pool.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.PartyID,
		modelOrder.OrderDate,
		modelOrder.Lines,
		modelOrder.TotalAmount,
		modelOrder.CostTotal,
		modelOrder.Notes,
		modelOrder.CreatedAt,
		modelOrder.CreatedBy,
		modelOrder.LastUpdatedAt,
		modelOrder.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: sale order %s already exists", apperrors.ErrDuplicate, order.OrderID)
		}
		return fmt.Errorf("failed to save sale order %s: %w", order.OrderID, err)
	}
	return nil
}

// ListSaleOrders retrieves a paginated list of sale orders, newest first.
func (r *PgxOrderRepository) ListSaleOrders(ctx context.Context, limit int, offset int) ([]domain.SaleOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT order_id, party_id, order_date, lines, total_amount, cost_total, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM sales_orders
		ORDER BY order_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.SaleOrder{}
	for rows.Next() {
		var m models.SaleOrder
		err := rows.Scan(
			&m.OrderID,
			&m.PartyID,
			&m.OrderDate,
			&m.Lines,
			&m.TotalAmount,
			&m.CostTotal,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale order row: %w", err)
		}
		domainOrder, err := toDomainSaleOrder(m)
		if err != nil {
			return nil, err
		}
		orders = append(orders, domainOrder)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale order rows: %w", rows.Err())
	}

	return orders, nil
}

// SavePurchaseOrder inserts a new purchase order.
func (r *PgxOrderRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	modelOrder, err := toModelPurchaseOrder(order)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO purchase_orders (order_id, party_id, order_date, lines, total_amount, status, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = r.Pool.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.PartyID,
		modelOrder.OrderDate,
		modelOrder.Lines,
		modelOrder.TotalAmount,
		modelOrder.Status,
		modelOrder.Notes,
		modelOrder.CreatedAt,
		modelOrder.CreatedBy,
		modelOrder.LastUpdatedAt,
		modelOrder.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: purchase order %s already exists", apperrors.ErrDuplicate, order.OrderID)
		}
		return fmt.Errorf("failed to save purchase order %s: %w", order.OrderID, err)
	}
	return nil
}

// ListPurchaseOrders retrieves a paginated list of purchase orders, newest first.
func (r *PgxOrderRepository) ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT order_id, party_id, order_date, lines, total_amount, status, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM purchase_orders
		ORDER BY order_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.PurchaseOrder{}
	for rows.Next() {
		var m models.PurchaseOrder
		err := rows.Scan(
			&m.OrderID,
			&m.PartyID,
			&m.OrderDate,
			&m.Lines,
			&m.TotalAmount,
			&m.Status,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order row: %w", err)
		}
		domainOrder, err := toDomainPurchaseOrder(m)
		if err != nil {
			return nil, err
		}
		orders = append(orders, domainOrder)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase order rows: %w", rows.Err())
	}

	return orders, nil
}
