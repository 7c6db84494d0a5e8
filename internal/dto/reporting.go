package dto

import (
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/utils/money"
)

// AgingRowResponse is one customer's aging classification, formatted for
// display.
type AgingRowResponse struct {
	PartyID      string `json:"partyID"`
	PartyName    string `json:"partyName"`
	Current      string `json:"current"`
	Days30       string `json:"days30"`
	Days60       string `json:"days60"`
	Days90Plus   string `json:"days90Plus"`
	TotalBalance string `json:"totalBalance"`
}

// ToAgingResponse formats aging rows at the given display scale.
func ToAgingResponse(rows []domain.AgingRow, scale int32) []AgingRowResponse {
	res := make([]AgingRowResponse, len(rows))
	for i, r := range rows {
		res[i] = AgingRowResponse{
			PartyID:      r.PartyID,
			PartyName:    r.PartyName,
			Current:      money.Format(r.Current, scale),
			Days30:       money.Format(r.Days30, scale),
			Days60:       money.Format(r.Days60, scale),
			Days90Plus:   money.Format(r.Days90Plus, scale),
			TotalBalance: money.Format(r.TotalBalance, scale),
		}
	}
	return res
}

// FinancialMetricsResponse is one period's company snapshot formatted for
// display.
type FinancialMetricsResponse struct {
	TotalReceivables string `json:"totalReceivables"`
	TotalPayables    string `json:"totalPayables"`
	POInTransit      string `json:"poInTransit"`
	StockValue       string `json:"stockValue"`
	CashInHand       string `json:"cashInHand"`
	BankBalances     string `json:"bankBalances"`
	TotalSales       string `json:"totalSales"`
	CostOfGoodsSold  string `json:"costOfGoodsSold"`
	NetProfit        string `json:"netProfit"`
	TotalLiquidity   string `json:"totalLiquidity"`
	NetWorth         string `json:"netWorth"`
}

// FinancialStandingResponse pairs current and prior month metrics with the
// trend percentages.
type FinancialStandingResponse struct {
	CurrentMonth FinancialMetricsResponse `json:"currentMonth"`
	LastMonth    FinancialMetricsResponse `json:"lastMonth"`
	Trend        domain.FinancialTrend    `json:"trend"`
}

func toMetricsResponse(m domain.FinancialMetrics, scale int32) FinancialMetricsResponse {
	return FinancialMetricsResponse{
		TotalReceivables: money.Format(m.TotalReceivables, scale),
		TotalPayables:    money.Format(m.TotalPayables, scale),
		POInTransit:      money.Format(m.POInTransit, scale),
		StockValue:       money.Format(m.StockValue, scale),
		CashInHand:       money.Format(m.CashInHand, scale),
		BankBalances:     money.Format(m.BankBalances, scale),
		TotalSales:       money.Format(m.TotalSales, scale),
		CostOfGoodsSold:  money.Format(m.CostOfGoodsSold, scale),
		NetProfit:        money.Format(m.NetProfit, scale),
		TotalLiquidity:   money.Format(m.TotalLiquidity, scale),
		NetWorth:         money.Format(m.NetWorth, scale),
	}
}

// ToFinancialStandingResponse formats a financial standing report at the
// given display scale.
func ToFinancialStandingResponse(s *domain.FinancialStanding, scale int32) FinancialStandingResponse {
	return FinancialStandingResponse{
		CurrentMonth: toMetricsResponse(s.CurrentMonth, scale),
		LastMonth:    toMetricsResponse(s.LastMonth, scale),
		Trend:        s.Trend,
	}
}
