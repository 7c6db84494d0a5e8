package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/electrotrade/eterp_backend/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// tradeService implements the TradeSvcFacade interface.
type tradeService struct {
	BaseService
	orderRepo   portsrepo.OrderRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTradeService creates a new trade service.
func NewTradeService(
	orderRepo portsrepo.OrderRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	partyRepo portsrepo.PartyRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
) portssvc.TradeSvcFacade {
	return &tradeService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		partyRepo:   partyRepo,
		accountRepo: accountRepo,
	}
}

// Ensure tradeService implements the TradeSvcFacade interface
var _ portssvc.TradeSvcFacade = (*tradeService)(nil)

// priceOrderLines builds the priced lines of an order. Each line total is
// quantity x unit price rounded at the display scale, and the order total is
// the sum of those rounded line totals, so the stored total always equals the
// sum of the lines as displayed.
func (s *tradeService) priceOrderLines(lines []dto.OrderLineRequest) ([]domain.OrderLine, decimal.Decimal, decimal.Decimal, error) {
	priced := make([]domain.OrderLine, 0, len(lines))
	total := decimal.Zero
	cost := decimal.Zero
	for i, line := range lines {
		qty, err := parsePositiveAmount(fmt.Sprintf("lines[%d].quantity", i), line.Quantity)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		price, err := parseAmount(fmt.Sprintf("lines[%d].unitPrice", i), line.UnitPrice)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		if price.Sign() < 0 {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: lines[%d].unitPrice must not be negative", apperrors.ErrValidation, i)
		}

		// Cost price is optional; the safe-zero parse is fine here because a
		// missing cost simply contributes nothing to COGS.
		costPrice := money.ParseString(line.CostPrice)

		lineTotal := money.LineTotal(qty, price, money.KWDScale)
		priced = append(priced, domain.OrderLine{
			Description: line.Description,
			Quantity:    qty,
			UnitPrice:   price,
			CostPrice:   costPrice,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
		cost = cost.Add(money.LineTotal(qty, costPrice, money.KWDScale))
	}
	return priced, total, cost, nil
}

func (s *tradeService) requireParty(ctx context.Context, partyID string, partyType domain.PartyType) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.PartyType != partyType {
		return nil, fmt.Errorf("%w: party %s is not a %s", apperrors.ErrValidation, partyID, partyType)
	}
	return party, nil
}

// RecordSale validates and persists a sale order against a customer.
func (s *tradeService) RecordSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.SaleOrder, error) {
	if _, err := s.requireParty(ctx, req.PartyID, domain.Customer); err != nil {
		return nil, err
	}
	orderDate, err := dto.ParseDate("orderDate", req.OrderDate)
	if err != nil {
		return nil, err
	}
	lines, total, cost, err := s.priceOrderLines(req.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := domain.SaleOrder{
		OrderID:     uuid.NewString(),
		PartyID:     req.PartyID,
		OrderDate:   orderDate,
		Lines:       lines,
		TotalAmount: total,
		CostTotal:   cost,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orderRepo.SaveSaleOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save sale order", slog.String("party_id", req.PartyID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("order_id", order.OrderID),
		slog.String("total", total.String()))
	return &order, nil
}

// RecordPurchase validates and persists a purchase order against a supplier.
func (s *tradeService) RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseOrder, error) {
	if _, err := s.requireParty(ctx, req.PartyID, domain.Supplier); err != nil {
		return nil, err
	}
	orderDate, err := dto.ParseDate("orderDate", req.OrderDate)
	if err != nil {
		return nil, err
	}
	lines, total, _, err := s.priceOrderLines(req.Lines)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.PurchaseOrdered
	}

	now := time.Now().UTC()
	order := domain.PurchaseOrder{
		OrderID:     uuid.NewString(),
		PartyID:     req.PartyID,
		OrderDate:   orderDate,
		Lines:       lines,
		TotalAmount: total,
		Status:      status,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orderRepo.SavePurchaseOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save purchase order", slog.String("party_id", req.PartyID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("order_id", order.OrderID),
		slog.String("total", total.String()))
	return &order, nil
}

// RecordPayment validates and persists a payment. IN comes from a customer,
// OUT goes to a supplier; the linked account balance moves with it inside one
// repository transaction.
func (s *tradeService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	amount, err := parsePositiveAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	paymentDate, err := dto.ParseDate("paymentDate", req.PaymentDate)
	if err != nil {
		return nil, err
	}

	expectedType := domain.Customer
	if req.Direction == domain.PaymentOut {
		expectedType = domain.Supplier
	}
	if _, err := s.requireParty(ctx, req.PartyID, expectedType); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		PartyID:     req.PartyID,
		AccountID:   req.AccountID,
		Direction:   req.Direction,
		Amount:      amount,
		PaymentDate: paymentDate,
		Reference:   req.Reference,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("party_id", req.PartyID),
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("direction", string(payment.Direction)),
		slog.String("amount", amount.String()))
	return &payment, nil
}

// RecordReturn validates and persists a sale or purchase return.
func (s *tradeService) RecordReturn(ctx context.Context, req dto.CreateReturnRequest, userID string) (*domain.ReturnRecord, error) {
	amount, err := parsePositiveAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	returnDate, err := dto.ParseDate("returnDate", req.ReturnDate)
	if err != nil {
		return nil, err
	}

	expectedType := domain.Customer
	if req.ReturnType == domain.PurchaseReturn {
		expectedType = domain.Supplier
	}
	if _, err := s.requireParty(ctx, req.PartyID, expectedType); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ret := domain.ReturnRecord{
		ReturnID:   uuid.NewString(),
		PartyID:    req.PartyID,
		ReturnType: req.ReturnType,
		Amount:     amount,
		ReturnDate: returnDate,
		Reference:  req.Reference,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.paymentRepo.SaveReturn(ctx, ret); err != nil {
		s.LogError(ctx, err, "Failed to save return", slog.String("party_id", req.PartyID))
		return nil, err
	}

	s.LogInfo(ctx, "Return recorded",
		slog.String("return_id", ret.ReturnID),
		slog.String("return_type", string(ret.ReturnType)))
	return &ret, nil
}

// ListSales retrieves a paginated list of sale orders.
func (s *tradeService) ListSales(ctx context.Context, limit int, offset int) ([]domain.SaleOrder, error) {
	return s.orderRepo.ListSaleOrders(ctx, limit, offset)
}

// ListPurchases retrieves a paginated list of purchase orders.
func (s *tradeService) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error) {
	return s.orderRepo.ListPurchaseOrders(ctx, limit, offset)
}

// ListPayments retrieves a paginated list of payments.
func (s *tradeService) ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error) {
	return s.paymentRepo.ListPayments(ctx, limit, offset)
}

// ListReturns retrieves a paginated list of returns.
func (s *tradeService) ListReturns(ctx context.Context, limit int, offset int) ([]domain.ReturnRecord, error) {
	return s.paymentRepo.ListReturns(ctx, limit, offset)
}
