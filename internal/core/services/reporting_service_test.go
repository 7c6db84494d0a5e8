package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockSourceRepo    *MockLedgerSourceRepository
	mockPartyRepo     *MockPartyRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockSourceRepo = new(MockLedgerSourceRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockSourceRepo, suite.mockPartyRepo, suite.mockReportingRepo)
}

func (suite *ReportingServiceTestSuite) TestCustomerAging_BucketsAndOmissions() {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	customers := []domain.Party{
		{PartyID: "c1", Name: "Al Noor Electronics", PartyType: domain.Customer},
		{PartyID: "c2", Name: "Settled Trading", PartyType: domain.Customer},
		{PartyID: "c3", Name: "No Activity Co", PartyType: domain.Customer},
	}

	sources := map[string][]domain.SourceRecord{
		// c1: an old unpaid invoice and a recent one.
		"c1": {
			{SourceID: "s1", Type: domain.SourceSale, Date: asOf.AddDate(0, 0, -95), Amount: decimal.RequireFromString("100"), CreatedAt: asOf},
			{SourceID: "s2", Type: domain.SourceSale, Date: asOf.AddDate(0, 0, -5), Amount: decimal.RequireFromString("40"), CreatedAt: asOf},
		},
		// c2: fully paid, must be omitted from the report.
		"c2": {
			{SourceID: "s3", Type: domain.SourceSale, Date: asOf.AddDate(0, 0, -10), Amount: decimal.RequireFromString("60"), CreatedAt: asOf},
			{SourceID: "p1", Type: domain.SourcePaymentIn, Date: asOf.AddDate(0, 0, -2), Amount: decimal.RequireFromString("60"), CreatedAt: asOf},
		},
	}

	suite.mockPartyRepo.On("FindPartiesByType", ctx, domain.Customer).Return(customers, nil).Once()
	suite.mockSourceRepo.On("FindSourcesByPartyType", ctx, domain.Customer).Return(sources, nil).Once()

	rows, err := suite.service.CustomerAging(ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1, "settled and inactive customers are omitted")

	row := rows[0]
	suite.Equal("c1", row.PartyID)
	suite.Equal("Al Noor Electronics", row.PartyName)
	suite.True(row.Days90Plus.Equal(decimal.RequireFromString("100")))
	suite.True(row.Current.Equal(decimal.RequireFromString("40")))
	suite.True(row.TotalBalance.Equal(decimal.RequireFromString("140")))

	sum := row.Current.Add(row.Days30).Add(row.Days60).Add(row.Days90Plus)
	suite.True(sum.Equal(row.TotalBalance), "buckets must sum exactly to the total")
}

func (suite *ReportingServiceTestSuite) TestFinancialStanding_MetricsAndTrends() {
	ctx := context.Background()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	currentStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mayStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	// One customer whose receivable grew in June, one supplier payable, cash
	// held steady.
	partySources := map[string][]domain.SourceRecord{
		"c1": {
			{SourceID: "s1", Type: domain.SourceSale, Date: mayStart.AddDate(0, 0, 3), Amount: decimal.RequireFromString("200"), CreatedAt: now},
			{SourceID: "s2", Type: domain.SourceSale, Date: currentStart.AddDate(0, 0, 3), Amount: decimal.RequireFromString("100"), CreatedAt: now},
		},
	}
	supplierSources := map[string][]domain.SourceRecord{
		"sup1": {
			{SourceID: "po1", Type: domain.SourcePurchase, Date: mayStart.AddDate(0, 0, 8), Amount: decimal.RequireFromString("50"), CreatedAt: now},
		},
	}
	cashSources := map[string][]domain.SourceRecord{
		"acc1": {
			{SourceID: "ob1", Type: domain.SourceOpeningBalance, Date: mayStart, Amount: decimal.RequireFromString("1000"), CreatedAt: now},
		},
	}

	suite.mockSourceRepo.On("FindSourcesByPartyType", ctx, domain.Customer).Return(partySources, nil).Once()
	suite.mockSourceRepo.On("FindSourcesByPartyType", ctx, domain.Supplier).Return(supplierSources, nil).Once()
	suite.mockSourceRepo.On("FindSourcesByAccountType", ctx, domain.Cash).Return(cashSources, nil).Once()
	suite.mockSourceRepo.On("FindSourcesByAccountType", ctx, domain.Bank).Return(map[string][]domain.SourceRecord{}, nil).Once()

	suite.mockReportingRepo.On("GetStockValue", ctx).Return(decimal.RequireFromString("300"), nil).Once()
	// June so far: sales 100, cost 40. May: sales 200, cost 90.
	suite.mockReportingRepo.On("GetSalesTotals", ctx, currentStart, now).
		Return(decimal.RequireFromString("100"), decimal.RequireFromString("40"), nil).Once()
	suite.mockReportingRepo.On("GetSalesTotals", ctx, mayStart, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("200"), decimal.RequireFromString("90"), nil).Once()
	suite.mockReportingRepo.On("GetPurchaseInTransitTotal", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("200"), nil).Twice()

	standing, err := suite.service.FinancialStanding(ctx, now)

	suite.Require().NoError(err)

	// Current month: receivable 300, payable 50, cash 1000, stock 300.
	suite.True(standing.CurrentMonth.TotalReceivables.Equal(decimal.RequireFromString("300")))
	suite.True(standing.CurrentMonth.TotalPayables.Equal(decimal.RequireFromString("50")))
	suite.True(standing.CurrentMonth.CashInHand.Equal(decimal.RequireFromString("1000")))
	suite.True(standing.CurrentMonth.TotalLiquidity.Equal(decimal.RequireFromString("1000")))
	suite.True(standing.CurrentMonth.NetProfit.Equal(decimal.RequireFromString("60")))
	suite.True(standing.CurrentMonth.POInTransit.Equal(decimal.RequireFromString("200")))
	// NetWorth = liquidity + receivables + stock + in-transit POs - payables.
	suite.True(standing.CurrentMonth.NetWorth.Equal(decimal.RequireFromString("1750")))

	// Last month end: receivable 200 only.
	suite.True(standing.LastMonth.TotalReceivables.Equal(decimal.RequireFromString("200")))
	suite.True(standing.LastMonth.NetProfit.Equal(decimal.RequireFromString("110")))

	// Trends: sales 100 vs 200 is -50%, receivables 300 vs 200 is +50%.
	suite.True(standing.Trend.SalesChange.Equal(decimal.RequireFromString("-50")), "sales change = %s", standing.Trend.SalesChange)
	suite.True(standing.Trend.ReceivablesChange.Equal(decimal.RequireFromString("50")), "receivables change = %s", standing.Trend.ReceivablesChange)
	// Liquidity unchanged month over month.
	suite.True(standing.Trend.LiquidityChange.IsZero())

	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestFinancialStanding_InTransitCountsTowardNetWorth() {
	ctx := context.Background()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	// No parties, no accounts, no stock, no sales. The only asset is goods
	// paid for but still on the water.
	empty := map[string][]domain.SourceRecord{}
	suite.mockSourceRepo.On("FindSourcesByPartyType", ctx, domain.Customer).Return(empty, nil).Once()
	suite.mockSourceRepo.On("FindSourcesByPartyType", ctx, domain.Supplier).Return(empty, nil).Once()
	suite.mockSourceRepo.On("FindSourcesByAccountType", ctx, domain.Cash).Return(empty, nil).Once()
	suite.mockSourceRepo.On("FindSourcesByAccountType", ctx, domain.Bank).Return(empty, nil).Once()
	suite.mockReportingRepo.On("GetStockValue", ctx).Return(decimal.Zero, nil).Once()
	suite.mockReportingRepo.On("GetSalesTotals", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, decimal.Zero, nil).Twice()
	suite.mockReportingRepo.On("GetPurchaseInTransitTotal", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.RequireFromString("500"), nil).Twice()

	standing, err := suite.service.FinancialStanding(ctx, now)

	suite.Require().NoError(err)
	suite.True(standing.CurrentMonth.POInTransit.Equal(decimal.RequireFromString("500")))
	suite.True(standing.CurrentMonth.NetWorth.Equal(decimal.RequireFromString("500")),
		"in-transit purchases are owned goods and belong in net worth, got %s", standing.CurrentMonth.NetWorth)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
