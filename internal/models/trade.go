package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleOrder mirrors the sales_orders table. Lines holds the priced order
// lines as a JSONB document.
type SaleOrder struct {
	OrderID     string          `db:"order_id"`
	PartyID     string          `db:"party_id"`
	OrderDate   time.Time       `db:"order_date"`
	Lines       []byte          `db:"lines"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	CostTotal   decimal.Decimal `db:"cost_total"`
	Notes       string          `db:"notes"`
	AuditFields
}

// PurchaseOrder mirrors the purchase_orders table. Lines holds the priced
// order lines as a JSONB document.
type PurchaseOrder struct {
	OrderID     string          `db:"order_id"`
	PartyID     string          `db:"party_id"`
	OrderDate   time.Time       `db:"order_date"`
	Lines       []byte          `db:"lines"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"` // ORDERED, IN_TRANSIT, RECEIVED
	Notes       string          `db:"notes"`
	AuditFields
}

// Payment mirrors the payments table.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	PartyID     string          `db:"party_id"`
	AccountID   string          `db:"account_id"`
	Direction   string          `db:"direction"` // IN or OUT
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Reference   string          `db:"reference"`
	Notes       string          `db:"notes"`
	AuditFields
}

// ReturnRecord mirrors the returns table.
type ReturnRecord struct {
	ReturnID   string          `db:"return_id"`
	PartyID    string          `db:"party_id"`
	ReturnType string          `db:"return_type"` // SALE or PURCHASE
	Amount     decimal.Decimal `db:"amount"`
	ReturnDate time.Time       `db:"return_date"`
	Reference  string          `db:"reference"`
	Notes      string          `db:"notes"`
	AuditFields
}

// Product mirrors the products table. Quantity and CostPrice drive the stock
// value figure on the financial standing report.
type Product struct {
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	CostPrice decimal.Decimal `db:"cost_price"`
	SalePrice decimal.Decimal `db:"sale_price"`
	Quantity  decimal.Decimal `db:"quantity"`
	AuditFields
}
