package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTransfer moves funds between two internal accounts. Created once,
// immutable thereafter; its effect must appear in exactly two account
// balances, in opposite directions, with equal magnitude.
type AccountTransfer struct {
	TransferID    string          `json:"transferID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"` // Strictly positive
	TransferDate  time.Time       `json:"transferDate"`
	Notes         string          `json:"notes"`
	AuditFields
}
