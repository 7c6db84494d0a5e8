package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the stored transaction a ledger entry was derived
// from. Transfers and adjustments appear pre-split by direction because a
// single stored record can affect two accounts in opposite ways.
type SourceType string

const (
	SourceSale           SourceType = "SALE"
	SourcePurchase       SourceType = "PURCHASE"
	SourcePaymentIn      SourceType = "PAYMENT_IN"
	SourcePaymentOut     SourceType = "PAYMENT_OUT"
	SourceSaleReturn     SourceType = "SALE_RETURN"
	SourcePurchaseReturn SourceType = "PURCHASE_RETURN"
	SourceOpeningBalance SourceType = "OPENING_BALANCE"
	SourceAdjustmentIn   SourceType = "ADJUSTMENT_IN"
	SourceAdjustmentOut  SourceType = "ADJUSTMENT_OUT"
	SourceTransferOut    SourceType = "TRANSFER_OUT"
	SourceTransferIn     SourceType = "TRANSFER_IN"
)

// SourceRecord is a uniform raw row drawn from one of the underlying
// transaction tables, before normalization into a ledger entry. CreatedAt and
// SourceID provide the stable secondary ordering key so that running balance
// recomputation is reproducible when several records share a date.
type SourceRecord struct {
	SourceID  string          `json:"sourceID"`
	Type      SourceType      `json:"type"`
	Date      time.Time       `json:"date"` // Zero time means the record is excluded from statements
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"createdAt"`
}

// LedgerEntry is a normalized, signed, dated money movement derived from a
// source transaction. Exactly one of Debit/Credit is nonzero. It is computed
// on demand and has no independent lifecycle.
type LedgerEntry struct {
	Date      time.Time       `json:"date"`
	Type      SourceType      `json:"type"`
	Reference string          `json:"reference"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// StatementLine is a ledger entry annotated with the running balance after
// applying it.
type StatementLine struct {
	LedgerEntry
	Balance decimal.Decimal `json:"balance"`
}

// Statement is the result of replaying an entity's ledger over an optional
// date window.
type Statement struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Lines          []StatementLine `json:"lines"`
}
