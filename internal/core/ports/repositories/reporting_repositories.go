package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportingRepository computes the SQL-side aggregates for the financial
// standing report.
type ReportingRepository interface {
	// GetSalesTotals returns the sum of sale totals and of their cost totals
	// for orders dated within [from, to].
	GetSalesTotals(ctx context.Context, from, to time.Time) (total, cost decimal.Decimal, err error)

	// GetStockValue returns the current quantity x cost value of all
	// products.
	GetStockValue(ctx context.Context) (decimal.Decimal, error)

	// GetPurchaseInTransitTotal returns the total of purchase orders still in
	// transit as of the given date.
	GetPurchaseInTransitTotal(ctx context.Context, asOf time.Time) (decimal.Decimal, error)
}
