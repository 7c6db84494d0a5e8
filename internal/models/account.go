package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of store-of-funds an account is.
type AccountType string

const (
	Cash AccountType = "CASH"
	Bank AccountType = "BANK"
)

// Account mirrors the accounts table.
type Account struct {
	AccountID    string          `db:"account_id"`
	Name         string          `db:"name"`
	AccountType  AccountType     `db:"account_type"`
	CurrencyCode string          `db:"currency_code"`
	Description  string          `db:"description"`
	IsActive     bool            `db:"is_active"`
	AuditFields                  // Embed common audit fields
	Balance      decimal.Decimal `db:"balance"` // Persisted running balance
}

// OpeningBalance mirrors the opening_balances table. OwnerType/OwnerID point
// at either an account or a party.
type OpeningBalance struct {
	OpeningBalanceID string          `db:"opening_balance_id"`
	OwnerType        string          `db:"owner_type"` // ACCOUNT or PARTY
	OwnerID          string          `db:"owner_id"`
	Amount           decimal.Decimal `db:"amount"`
	EntryDate        time.Time       `db:"entry_date"`
	Notes            string          `db:"notes"`
	AuditFields
}

// Adjustment mirrors the adjustments table. Reason is NOT NULL by schema; the
// audit trail requirement is enforced at both layers.
type Adjustment struct {
	AdjustmentID string          `db:"adjustment_id"`
	AccountID    string          `db:"account_id"`
	Amount       decimal.Decimal `db:"amount"`
	Direction    string          `db:"direction"` // IN or OUT
	EntryDate    time.Time       `db:"entry_date"`
	Reason       string          `db:"reason"`
	AuditFields
}
