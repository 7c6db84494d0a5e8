package domain

import (
	"github.com/shopspring/decimal"
)

// AgingRow classifies one customer's outstanding receivable by time since
// invoice. Invariant: Current + Days30 + Days60 + Days90Plus == TotalBalance,
// as exact decimal equality.
type AgingRow struct {
	PartyID      string          `json:"partyID"`
	PartyName    string          `json:"partyName"`
	Current      decimal.Decimal `json:"current"`    // 0-30 days
	Days30       decimal.Decimal `json:"days30"`     // 31-60 days
	Days60       decimal.Decimal `json:"days60"`     // 61-90 days
	Days90Plus   decimal.Decimal `json:"days90Plus"` // 91+ days
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// FinancialMetrics is the cross-cutting company snapshot for one period.
type FinancialMetrics struct {
	TotalReceivables decimal.Decimal `json:"totalReceivables"`
	TotalPayables    decimal.Decimal `json:"totalPayables"`
	POInTransit      decimal.Decimal `json:"poInTransit"`
	StockValue       decimal.Decimal `json:"stockValue"`
	CashInHand       decimal.Decimal `json:"cashInHand"`
	BankBalances     decimal.Decimal `json:"bankBalances"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	CostOfGoodsSold  decimal.Decimal `json:"costOfGoodsSold"`
	NetProfit        decimal.Decimal `json:"netProfit"` // TotalSales - CostOfGoodsSold
	TotalLiquidity   decimal.Decimal `json:"totalLiquidity"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// FinancialTrend carries the period-over-period percentage change for the
// headline metrics. Zero over zero reads as no change; a single zero side
// reads as a full swing of +/-100.
type FinancialTrend struct {
	SalesChange       decimal.Decimal `json:"salesChange"`
	ProfitChange      decimal.Decimal `json:"profitChange"`
	ReceivablesChange decimal.Decimal `json:"receivablesChange"`
	PayablesChange    decimal.Decimal `json:"payablesChange"`
	LiquidityChange   decimal.Decimal `json:"liquidityChange"`
}

// FinancialStanding pairs the current and prior month metrics for trend
// comparison.
type FinancialStanding struct {
	CurrentMonth FinancialMetrics `json:"currentMonth"`
	LastMonth    FinancialMetrics `json:"lastMonth"`
	Trend        FinancialTrend   `json:"trend"`
}
