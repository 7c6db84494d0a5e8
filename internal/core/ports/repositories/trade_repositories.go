package repositories

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// OrderRepositoryFacade defines operations for sale and purchase orders.
type OrderRepositoryFacade interface {
	// SaveSaleOrder persists a new sale order.
	SaveSaleOrder(ctx context.Context, order domain.SaleOrder) error

	// ListSaleOrders retrieves a paginated list of sale orders, newest first.
	ListSaleOrders(ctx context.Context, limit int, offset int) ([]domain.SaleOrder, error)

	// SavePurchaseOrder persists a new purchase order.
	SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error

	// ListPurchaseOrders retrieves a paginated list of purchase orders, newest first.
	ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error)
}

// PaymentRepositoryFacade defines operations for payments and returns.
type PaymentRepositoryFacade interface {
	// SavePayment inserts a payment and applies its effect to the linked
	// account balance inside one transaction.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// ListPayments retrieves a paginated list of payments, newest first.
	ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error)

	// SaveReturn persists a new return record. Returns only affect derived
	// party balances, so no account balance is touched.
	SaveReturn(ctx context.Context, ret domain.ReturnRecord) error

	// ListReturns retrieves a paginated list of returns, newest first.
	ListReturns(ctx context.Context, limit int, offset int) ([]domain.ReturnRecord, error)
}
