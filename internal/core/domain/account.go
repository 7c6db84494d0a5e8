package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of internal store-of-funds an account is.
type AccountType string

const (
	Cash AccountType = "CASH"
	Bank AccountType = "BANK"
)

// Account represents an internal store-of-funds record (cash drawer, bank
// account) within the core domain. This is the primary representation used by
// services. Balance is persisted and mutated only by opening balances,
// adjustments, transfers and linked payments.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID)
	Name         string          `json:"name"`         // User-defined name
	AccountType  AccountType     `json:"accountType"`  // CASH or BANK
	CurrencyCode string          `json:"currencyCode"` // FK -> currencies.code (NON-NULL)
	Description  string          `json:"description"`  // Nullable user description
	IsActive     bool            `json:"isActive"`     // Soft delete or status flag
	AuditFields                  // Embed CreatedAt, CreatedBy, etc.
	Balance      decimal.Decimal `json:"balance"`
}

// AdjustmentDirection indicates whether a manual adjustment adds funds to or
// removes funds from an account.
type AdjustmentDirection string

const (
	AdjustmentIn  AdjustmentDirection = "IN"
	AdjustmentOut AdjustmentDirection = "OUT"
)

// Adjustment is a manual correction to an account balance. Reason is a
// mandatory audit trail requirement, not a UI nicety.
type Adjustment struct {
	AdjustmentID string              `json:"adjustmentID"`
	AccountID    string              `json:"accountID"`
	Amount       decimal.Decimal     `json:"amount"` // Always positive; Direction carries the sign
	Direction    AdjustmentDirection `json:"direction"`
	EntryDate    time.Time           `json:"entryDate"`
	Reason       string              `json:"reason"`
	AuditFields
}

// OpeningBalanceOwner distinguishes which kind of entity an opening balance
// record establishes a baseline for.
type OpeningBalanceOwner string

const (
	AccountOwner OpeningBalanceOwner = "ACCOUNT"
	PartyOwner   OpeningBalanceOwner = "PARTY"
)

// OpeningBalance establishes the baseline balance the running balance
// calculator uses as entry zero before replaying later transactions.
type OpeningBalance struct {
	OpeningBalanceID string              `json:"openingBalanceID"`
	OwnerType        OpeningBalanceOwner `json:"ownerType"`
	OwnerID          string              `json:"ownerID"`
	Amount           decimal.Decimal     `json:"amount"` // May be negative (e.g. a party we owe)
	EntryDate        time.Time           `json:"entryDate"`
	Notes            string              `json:"notes"`
	AuditFields
}
