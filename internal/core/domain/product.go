package domain

import "github.com/shopspring/decimal"

// Product is a stocked catalogue item. Quantity times CostPrice across all
// products yields the stock value figure on the financial standing report.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Quantity  decimal.Decimal `json:"quantity"`
	AuditFields
}
