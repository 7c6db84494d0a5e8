package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTransfer mirrors the account_transfers table. Rows are insert-only.
type AccountTransfer struct {
	TransferID    string          `db:"transfer_id"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	Amount        decimal.Decimal `db:"amount"`
	TransferDate  time.Time       `db:"transfer_date"`
	Notes         string          `db:"notes"`
	AuditFields
}
