package dto

import (
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one priced line on a sale or purchase. Quantities and
// prices travel as decimal strings to preserve exactness across the wire.
type OrderLineRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    string `json:"quantity" binding:"required"`
	UnitPrice   string `json:"unitPrice" binding:"required"`
	CostPrice   string `json:"costPrice"` // Optional; per-unit cost for COGS
}

// CreateSaleRequest records a sale to a customer.
type CreateSaleRequest struct {
	PartyID   string             `json:"partyID" binding:"required"`
	OrderDate string             `json:"orderDate" binding:"required"`
	Lines     []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	Notes     string             `json:"notes"`
}

// CreatePurchaseRequest records a purchase from a supplier.
type CreatePurchaseRequest struct {
	PartyID   string                `json:"partyID" binding:"required"`
	OrderDate string                `json:"orderDate" binding:"required"`
	Status    domain.PurchaseStatus `json:"status" binding:"omitempty,oneof=ORDERED IN_TRANSIT RECEIVED"`
	Lines     []OrderLineRequest    `json:"lines" binding:"required,min=1,dive"`
	Notes     string                `json:"notes"`
}

// OrderLineResponse is one priced line as stored on an order.
type OrderLineResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CostPrice   decimal.Decimal `json:"costPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

func toOrderLineResponses(lines []domain.OrderLine) []OrderLineResponse {
	out := make([]OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, OrderLineResponse{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			CostPrice:   l.CostPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return out
}

// SaleOrderResponse is the stored sale order plus its computed totals.
type SaleOrderResponse struct {
	OrderID     string              `json:"orderID"`
	PartyID     string              `json:"partyID"`
	OrderDate   string              `json:"orderDate"`
	Lines       []OrderLineResponse `json:"lines"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	CostTotal   decimal.Decimal     `json:"costTotal"`
	Notes       string              `json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToSaleOrderResponse converts a domain.SaleOrder to its response DTO.
func ToSaleOrderResponse(o *domain.SaleOrder) SaleOrderResponse {
	return SaleOrderResponse{
		OrderID:     o.OrderID,
		PartyID:     o.PartyID,
		OrderDate:   o.OrderDate.Format(DateLayout),
		Lines:       toOrderLineResponses(o.Lines),
		TotalAmount: o.TotalAmount,
		CostTotal:   o.CostTotal,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
	}
}

// PurchaseOrderResponse is the stored purchase order plus its computed total.
type PurchaseOrderResponse struct {
	OrderID     string                `json:"orderID"`
	PartyID     string                `json:"partyID"`
	OrderDate   string                `json:"orderDate"`
	Lines       []OrderLineResponse   `json:"lines"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Status      domain.PurchaseStatus `json:"status"`
	Notes       string                `json:"notes"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to its response DTO.
func ToPurchaseOrderResponse(o *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		OrderID:     o.OrderID,
		PartyID:     o.PartyID,
		OrderDate:   o.OrderDate.Format(DateLayout),
		Lines:       toOrderLineResponses(o.Lines),
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
	}
}

// CreatePaymentRequest records a payment in from a customer or out to a
// supplier, linked to the internal account the money moved through.
type CreatePaymentRequest struct {
	PartyID     string                  `json:"partyID" binding:"required"`
	AccountID   string                  `json:"accountID" binding:"required"`
	Direction   domain.PaymentDirection `json:"direction" binding:"required,oneof=IN OUT"`
	Amount      string                  `json:"amount" binding:"required"`
	PaymentDate string                  `json:"paymentDate" binding:"required"`
	Reference   string                  `json:"reference"`
	Notes       string                  `json:"notes"`
}

// PaymentResponse is the stored payment.
type PaymentResponse struct {
	PaymentID   string                  `json:"paymentID"`
	PartyID     string                  `json:"partyID"`
	AccountID   string                  `json:"accountID"`
	Direction   domain.PaymentDirection `json:"direction"`
	Amount      decimal.Decimal         `json:"amount"`
	PaymentDate string                  `json:"paymentDate"`
	Reference   string                  `json:"reference"`
	Notes       string                  `json:"notes"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		PartyID:     p.PartyID,
		AccountID:   p.AccountID,
		Direction:   p.Direction,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(DateLayout),
		Reference:   p.Reference,
		Notes:       p.Notes,
	}
}

// CreateReturnRequest reverses part of a sale or purchase.
type CreateReturnRequest struct {
	PartyID    string            `json:"partyID" binding:"required"`
	ReturnType domain.ReturnType `json:"returnType" binding:"required,oneof=SALE PURCHASE"`
	Amount     string            `json:"amount" binding:"required"`
	ReturnDate string            `json:"returnDate" binding:"required"`
	Reference  string            `json:"reference"`
	Notes      string            `json:"notes"`
}

// ReturnResponse is the stored return record.
type ReturnResponse struct {
	ReturnID   string            `json:"returnID"`
	PartyID    string            `json:"partyID"`
	ReturnType domain.ReturnType `json:"returnType"`
	Amount     decimal.Decimal   `json:"amount"`
	ReturnDate string            `json:"returnDate"`
	Reference  string            `json:"reference"`
	Notes      string            `json:"notes"`
}

// ToReturnResponse converts a domain.ReturnRecord to its response DTO.
func ToReturnResponse(r *domain.ReturnRecord) ReturnResponse {
	return ReturnResponse{
		ReturnID:   r.ReturnID,
		PartyID:    r.PartyID,
		ReturnType: r.ReturnType,
		Amount:     r.Amount,
		ReturnDate: r.ReturnDate.Format(DateLayout),
		Reference:  r.Reference,
		Notes:      r.Notes,
	}
}
