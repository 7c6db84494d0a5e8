package services

import (
	"context"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// ReportingService defines the ledger-wide report computations.
type ReportingService interface {
	// CustomerAging classifies each customer's outstanding balance into
	// time-since-invoice buckets as of the given date. Only customers with a
	// nonzero balance appear.
	CustomerAging(ctx context.Context, asOf time.Time) ([]domain.AgingRow, error)

	// FinancialStanding computes the company metrics for the month containing
	// now and for the month before it, with period-over-period trends.
	FinancialStanding(ctx context.Context, now time.Time) (*domain.FinancialStanding, error)
}
