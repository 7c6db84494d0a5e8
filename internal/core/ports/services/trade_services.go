package services

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/dto"
)

// TradeSvcFacade defines operations for recording and listing sales,
// purchases, payments and returns.
type TradeSvcFacade interface {
	// RecordSale validates and persists a sale order, computing line totals
	// and the order total at the display scale.
	RecordSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.SaleOrder, error)

	// RecordPurchase validates and persists a purchase order.
	RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseOrder, error)

	// RecordPayment validates and persists a payment, mutating the linked
	// account balance atomically with the insert.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)

	// RecordReturn validates and persists a sale or purchase return.
	RecordReturn(ctx context.Context, req dto.CreateReturnRequest, userID string) (*domain.ReturnRecord, error)

	// ListSales retrieves a paginated list of sale orders.
	ListSales(ctx context.Context, limit int, offset int) ([]domain.SaleOrder, error)

	// ListPurchases retrieves a paginated list of purchase orders.
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error)

	// ListPayments retrieves a paginated list of payments.
	ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error)

	// ListReturns retrieves a paginated list of returns.
	ListReturns(ctx context.Context, limit int, offset int) ([]domain.ReturnRecord, error)
}
