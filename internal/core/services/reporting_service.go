package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/utils/ledgercalc"
	"github.com/electrotrade/eterp_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface.
type reportingService struct {
	BaseService
	sourceRepo    portsrepo.LedgerSourceRepository
	partyRepo     portsrepo.PartyRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	sourceRepo portsrepo.LedgerSourceRepository,
	partyRepo portsrepo.PartyRepositoryFacade,
	reportingRepo portsrepo.ReportingRepository,
) portssvc.ReportingService {
	return &reportingService{
		sourceRepo:    sourceRepo,
		partyRepo:     partyRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// CustomerAging classifies each customer's outstanding balance into
// time-since-invoice buckets as of the given date. Customers whose balance
// nets to zero are omitted.
func (s *reportingService) CustomerAging(ctx context.Context, asOf time.Time) ([]domain.AgingRow, error) {
	customers, err := s.partyRepo.FindPartiesByType(ctx, domain.Customer)
	if err != nil {
		return nil, err
	}
	sourcesByParty, err := s.sourceRepo.FindSourcesByPartyType(ctx, domain.Customer)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.AgingRow, 0, len(customers))
	for _, customer := range customers {
		entries, dropped := ledgercalc.Normalize(sourcesByParty[customer.PartyID], ledgercalc.PartyPerspective)
		if dropped > 0 {
			s.LogWarn(ctx, "Skipped undated records in aging report",
				slog.String("party_id", customer.PartyID),
				slog.Int("dropped", dropped))
		}
		buckets := ledgercalc.Aging(entries, asOf)
		if buckets.Total.IsZero() {
			continue
		}
		rows = append(rows, domain.AgingRow{
			PartyID:      customer.PartyID,
			PartyName:    customer.Name,
			Current:      buckets.Current,
			Days30:       buckets.Days30,
			Days60:       buckets.Days60,
			Days90Plus:   buckets.Days90Plus,
			TotalBalance: buckets.Total,
		})
	}
	return rows, nil
}

// FinancialStanding computes the company metrics for the month containing now
// and for the month before it, plus period-over-period trends. Balance-style
// metrics are evaluated as of each period's end from the same normalized
// source data, so the two periods can never disagree about history.
func (s *reportingService) FinancialStanding(ctx context.Context, now time.Time) (*domain.FinancialStanding, error) {
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	currentEnd := now
	lastStart := currentStart.AddDate(0, -1, 0)
	lastEnd := currentStart.Add(-time.Nanosecond)

	ledgers, err := s.loadLedgers(ctx)
	if err != nil {
		return nil, err
	}

	// Stock value is a current snapshot; historical stock levels are not
	// reconstructed, so both periods see the same figure.
	stockValue, err := s.reportingRepo.GetStockValue(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.metricsFor(ctx, ledgers, currentStart, currentEnd, stockValue)
	if err != nil {
		return nil, err
	}
	last, err := s.metricsFor(ctx, ledgers, lastStart, lastEnd, stockValue)
	if err != nil {
		return nil, err
	}

	return &domain.FinancialStanding{
		CurrentMonth: *current,
		LastMonth:    *last,
		Trend: domain.FinancialTrend{
			SalesChange:       percentChange(current.TotalSales, last.TotalSales),
			ProfitChange:      percentChange(current.NetProfit, last.NetProfit),
			ReceivablesChange: percentChange(current.TotalReceivables, last.TotalReceivables),
			PayablesChange:    percentChange(current.TotalPayables, last.TotalPayables),
			LiquidityChange:   percentChange(current.TotalLiquidity, last.TotalLiquidity),
		},
	}, nil
}

// standingLedgers holds the normalized per-entity ledgers both report periods
// are evaluated against.
type standingLedgers struct {
	customers map[string][]domain.LedgerEntry
	suppliers map[string][]domain.LedgerEntry
	cash      map[string][]domain.LedgerEntry
	bank      map[string][]domain.LedgerEntry
}

func (s *reportingService) loadLedgers(ctx context.Context) (*standingLedgers, error) {
	ledgers := &standingLedgers{}

	var err error
	if ledgers.customers, err = s.normalizedPartySources(ctx, domain.Customer); err != nil {
		return nil, err
	}
	if ledgers.suppliers, err = s.normalizedPartySources(ctx, domain.Supplier); err != nil {
		return nil, err
	}
	if ledgers.cash, err = s.normalizedAccountSources(ctx, domain.Cash); err != nil {
		return nil, err
	}
	if ledgers.bank, err = s.normalizedAccountSources(ctx, domain.Bank); err != nil {
		return nil, err
	}
	return ledgers, nil
}

func (s *reportingService) normalizedPartySources(ctx context.Context, partyType domain.PartyType) (map[string][]domain.LedgerEntry, error) {
	sources, err := s.sourceRepo.FindSourcesByPartyType(ctx, partyType)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.LedgerEntry, len(sources))
	for id, recs := range sources {
		entries, _ := ledgercalc.Normalize(recs, ledgercalc.PartyPerspective)
		out[id] = entries
	}
	return out, nil
}

func (s *reportingService) normalizedAccountSources(ctx context.Context, accountType domain.AccountType) (map[string][]domain.LedgerEntry, error) {
	sources, err := s.sourceRepo.FindSourcesByAccountType(ctx, accountType)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.LedgerEntry, len(sources))
	for id, recs := range sources {
		entries, _ := ledgercalc.Normalize(recs, ledgercalc.AccountPerspective)
		out[id] = entries
	}
	return out, nil
}

func (s *reportingService) metricsFor(ctx context.Context, ledgers *standingLedgers, from, to time.Time, stockValue decimal.Decimal) (*domain.FinancialMetrics, error) {
	totalSales, cogs, err := s.reportingRepo.GetSalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	inTransit, err := s.reportingRepo.GetPurchaseInTransitTotal(ctx, to)
	if err != nil {
		return nil, err
	}

	receivables := sumBalancesAsOf(ledgers.customers, ledgercalc.PartyPerspective, to)
	payables := sumBalancesAsOf(ledgers.suppliers, ledgercalc.PartyPerspective, to)
	cash := sumBalancesAsOf(ledgers.cash, ledgercalc.AccountPerspective, to)
	bank := sumBalancesAsOf(ledgers.bank, ledgercalc.AccountPerspective, to)

	liquidity := cash.Add(bank)
	netProfit := totalSales.Sub(cogs)

	return &domain.FinancialMetrics{
		TotalReceivables: receivables,
		TotalPayables:    payables,
		POInTransit:      inTransit,
		StockValue:       stockValue,
		CashInHand:       cash,
		BankBalances:     bank,
		TotalSales:       totalSales,
		CostOfGoodsSold:  cogs,
		NetProfit:        netProfit,
		TotalLiquidity:   liquidity,
		NetWorth:         liquidity.Add(receivables).Add(stockValue).Add(inTransit).Sub(payables),
	}, nil
}

func sumBalancesAsOf(ledgers map[string][]domain.LedgerEntry, p ledgercalc.Perspective, asOf time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, entries := range ledgers {
		total = total.Add(ledgercalc.BalanceAsOf(entries, p, asOf))
	}
	return total
}

var hundred = decimal.NewFromInt(100)

// percentChange returns the period-over-period change of curr against prev,
// as a percentage rounded to two places. Zero over zero reads as no change;
// growth from a zero base saturates at +/-100.
func percentChange(curr, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if curr.IsZero() {
			return decimal.Zero
		}
		if curr.Sign() > 0 {
			return hundred
		}
		return hundred.Neg()
	}
	change := curr.Sub(prev).Mul(hundred)
	return money.RoundTo(money.SafeDiv(change, prev.Abs()), money.ForeignScale)
}
