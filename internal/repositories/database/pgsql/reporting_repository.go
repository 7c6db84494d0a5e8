package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetSalesTotals returns the sum of sale totals and of their cost totals for
// orders dated within [from, to].
func (r *reportingRepository) GetSalesTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(cost_total), 0)
		FROM sales_orders
		WHERE order_date BETWEEN $1 AND $2;
	`
	var total, cost decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&total, &cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying sales totals: %w", err)
	}
	return total, cost, nil
}

// GetStockValue returns the current quantity x cost value of all products.
func (r *reportingRepository) GetStockValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity * cost_price), 0)
		FROM products;
	`
	var value decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("error querying stock value: %w", err)
	}
	return value, nil
}

// GetPurchaseInTransitTotal returns the total of purchase orders still in
// transit as of the given date.
func (r *reportingRepository) GetPurchaseInTransitTotal(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM purchase_orders
		WHERE status = 'IN_TRANSIT' AND order_date <= $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, asOf).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error querying in-transit purchase total: %w", err)
	}
	return total, nil
}
