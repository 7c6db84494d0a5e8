package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus tracks a purchase order's delivery state. IN_TRANSIT orders
// feed the poInTransit figure on the financial standing report.
type PurchaseStatus string

const (
	PurchaseOrdered   PurchaseStatus = "ORDERED"
	PurchaseInTransit PurchaseStatus = "IN_TRANSIT"
	PurchaseReceived  PurchaseStatus = "RECEIVED"
)

// OrderLine is a single priced line on a sale or purchase order. LineTotal is
// quantity x unit price rounded at the order's display scale; the order total
// is the sum of these rounded line totals so display and arithmetic never
// drift apart.
type OrderLine struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CostPrice   decimal.Decimal `json:"costPrice"` // Per-unit cost, used for COGS on sales
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// SaleOrder records a sale to a customer. TotalAmount debits the customer's
// receivable; CostTotal feeds cost of goods sold.
type SaleOrder struct {
	OrderID     string          `json:"orderID"`
	PartyID     string          `json:"partyID"` // Customer
	OrderDate   time.Time       `json:"orderDate"`
	Lines       []OrderLine     `json:"lines"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CostTotal   decimal.Decimal `json:"costTotal"`
	Notes       string          `json:"notes"`
	AuditFields
}

// PurchaseOrder records a purchase from a supplier. TotalAmount debits the
// supplier's payable.
type PurchaseOrder struct {
	OrderID     string          `json:"orderID"`
	PartyID     string          `json:"partyID"` // Supplier
	OrderDate   time.Time       `json:"orderDate"`
	Lines       []OrderLine     `json:"lines"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      PurchaseStatus  `json:"status"`
	Notes       string          `json:"notes"`
	AuditFields
}

// PaymentDirection says whether money came in from a customer or went out to
// a supplier.
type PaymentDirection string

const (
	PaymentIn  PaymentDirection = "IN"
	PaymentOut PaymentDirection = "OUT"
)

// Payment links a party and an internal account: IN credits the customer's
// receivable and the account; OUT credits the supplier's payable and debits
// the account.
type Payment struct {
	PaymentID   string           `json:"paymentID"`
	PartyID     string           `json:"partyID"`
	AccountID   string           `json:"accountID"`
	Direction   PaymentDirection `json:"direction"`
	Amount      decimal.Decimal  `json:"amount"` // Strictly positive
	PaymentDate time.Time        `json:"paymentDate"`
	Reference   string           `json:"reference"`
	Notes       string           `json:"notes"`
	AuditFields
}

// ReturnType distinguishes goods coming back from a customer from goods going
// back to a supplier.
type ReturnType string

const (
	SaleReturn     ReturnType = "SALE"
	PurchaseReturn ReturnType = "PURCHASE"
)

// ReturnRecord reverses part of a sale or purchase against the party balance.
type ReturnRecord struct {
	ReturnID   string          `json:"returnID"`
	PartyID    string          `json:"partyID"`
	ReturnType ReturnType      `json:"returnType"`
	Amount     decimal.Decimal `json:"amount"` // Strictly positive
	ReturnDate time.Time       `json:"returnDate"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
	AuditFields
}
