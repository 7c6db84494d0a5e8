package services_test

import (
	"context"
	"testing"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/core/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TradeServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockPaymentRepo *MockPaymentRepository
	mockPartyRepo   *MockPartyRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TradeSvcFacade
}

func (suite *TradeServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTradeService(suite.mockOrderRepo, suite.mockPaymentRepo, suite.mockPartyRepo, suite.mockAccountRepo)
}

func (suite *TradeServiceTestSuite) customer(id string) *domain.Party {
	return &domain.Party{PartyID: id, Name: "Al Noor Electronics", PartyType: domain.Customer, IsActive: true}
}

func (suite *TradeServiceTestSuite) supplier(id string) *domain.Party {
	return &domain.Party{PartyID: id, Name: "Gulf Components", PartyType: domain.Supplier, IsActive: true}
}

func (suite *TradeServiceTestSuite) TestRecordSale_TotalsAreSumsOfRoundedLines() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateSaleRequest{
		PartyID:   partyID,
		OrderDate: "2026-02-10",
		Lines: []dto.OrderLineRequest{
			{Description: "HDMI cable", Quantity: "3", UnitPrice: "1.005", CostPrice: "0.600"},
			{Description: "USB hub", Quantity: "2", UnitPrice: "2.007", CostPrice: "1.250"},
		},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()

	var saved domain.SaleOrder
	suite.mockOrderRepo.On("SaveSaleOrder", ctx, mock.AnythingOfType("domain.SaleOrder")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.SaleOrder) }).
		Return(nil).Once()

	order, err := suite.service.RecordSale(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	// 3 x 1.005 = 3.015 and 2 x 2.007 = 4.014, each rounded per line.
	suite.True(order.TotalAmount.Equal(decimal.RequireFromString("7.029")), "total = %s", order.TotalAmount)
	// COGS: 3 x 0.600 + 2 x 1.250 = 1.800 + 2.500.
	suite.True(order.CostTotal.Equal(decimal.RequireFromString("4.300")), "cost = %s", order.CostTotal)
	suite.Require().Len(saved.Lines, 2)
	suite.True(saved.Lines[0].LineTotal.Equal(decimal.RequireFromString("3.015")))
	suite.True(saved.Lines[1].LineTotal.Equal(decimal.RequireFromString("4.014")))
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *TradeServiceTestSuite) TestRecordSale_SupplierRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateSaleRequest{
		PartyID:   partyID,
		OrderDate: "2026-02-10",
		Lines:     []dto.OrderLineRequest{{Description: "x", Quantity: "1", UnitPrice: "1"}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.supplier(partyID), nil).Once()

	order, err := suite.service.RecordSale(ctx, req, "user-1")

	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveSaleOrder")
}

func (suite *TradeServiceTestSuite) TestRecordSale_NegativeUnitPriceRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateSaleRequest{
		PartyID:   partyID,
		OrderDate: "2026-02-10",
		Lines:     []dto.OrderLineRequest{{Description: "x", Quantity: "1", UnitPrice: "-2"}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()

	order, err := suite.service.RecordSale(ctx, req, "user-1")

	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TradeServiceTestSuite) TestRecordSale_ZeroQuantityRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateSaleRequest{
		PartyID:   partyID,
		OrderDate: "2026-02-10",
		Lines:     []dto.OrderLineRequest{{Description: "x", Quantity: "0", UnitPrice: "5"}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()

	order, err := suite.service.RecordSale(ctx, req, "user-1")

	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TradeServiceTestSuite) TestRecordPurchase_DefaultsToOrdered() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		PartyID:   partyID,
		OrderDate: "2026-02-11",
		Lines:     []dto.OrderLineRequest{{Description: "resistor reel", Quantity: "10", UnitPrice: "0.750"}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.supplier(partyID), nil).Once()
	suite.mockOrderRepo.On("SavePurchaseOrder", ctx, mock.AnythingOfType("domain.PurchaseOrder")).Return(nil).Once()

	order, err := suite.service.RecordPurchase(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PurchaseOrdered, order.Status)
	suite.True(order.TotalAmount.Equal(decimal.RequireFromString("7.500")))
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *TradeServiceTestSuite) TestRecordPurchase_CustomerRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		PartyID:   partyID,
		OrderDate: "2026-02-11",
		Lines:     []dto.OrderLineRequest{{Description: "x", Quantity: "1", UnitPrice: "1"}},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()

	order, err := suite.service.RecordPurchase(ctx, req, "user-1")

	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TradeServiceTestSuite) TestRecordPayment_InRequiresCustomer() {
	ctx := context.Background()
	partyID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		PartyID:     partyID,
		AccountID:   accountID,
		Direction:   domain.PaymentIn,
		Amount:      "150.250",
		PaymentDate: "2026-02-12",
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentIn, payment.Direction)
	suite.True(payment.Amount.Equal(decimal.RequireFromString("150.250")))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *TradeServiceTestSuite) TestRecordPayment_OutToCustomerRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		PartyID:     partyID,
		AccountID:   uuid.NewString(),
		Direction:   domain.PaymentOut,
		Amount:      "10",
		PaymentDate: "2026-02-12",
	}

	// OUT payments must target a supplier.
	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()

	payment, err := suite.service.RecordPayment(ctx, req, "user-1")

	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *TradeServiceTestSuite) TestRecordPayment_UnknownAccountRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	accountID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		PartyID:     partyID,
		AccountID:   accountID,
		Direction:   domain.PaymentIn,
		Amount:      "10",
		PaymentDate: "2026-02-12",
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.RecordPayment(ctx, req, "user-1")

	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *TradeServiceTestSuite) TestRecordReturn_SaleReturnRequiresCustomer() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateReturnRequest{
		PartyID:    partyID,
		ReturnType: domain.SaleReturn,
		Amount:     "25",
		ReturnDate: "2026-02-13",
		Reference:  "RMA-17",
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()
	suite.mockPaymentRepo.On("SaveReturn", ctx, mock.AnythingOfType("domain.ReturnRecord")).Return(nil).Once()

	ret, err := suite.service.RecordReturn(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.SaleReturn, ret.ReturnType)
	suite.Equal("RMA-17", ret.Reference)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *TradeServiceTestSuite) TestRecordReturn_PurchaseReturnToCustomerRejected() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.CreateReturnRequest{
		PartyID:    partyID,
		ReturnType: domain.PurchaseReturn,
		Amount:     "25",
		ReturnDate: "2026-02-13",
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(suite.customer(partyID), nil).Once()

	ret, err := suite.service.RecordReturn(ctx, req, "user-1")

	suite.Nil(ret)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SaveReturn")
}

func TestTradeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TradeServiceTestSuite))
}
