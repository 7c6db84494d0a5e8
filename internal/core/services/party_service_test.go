package services_test

import (
	"context"
	"testing"
	"time"

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

type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo  *MockPartyRepository
	mockSourceRepo *MockLedgerSourceRepository
	service        portssvc.PartySvcFacade
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockSourceRepo = new(MockLedgerSourceRepository)
	suite.service = services.NewPartyService(suite.mockPartyRepo, suite.mockSourceRepo)
}

func (suite *PartyServiceTestSuite) TestCreateParty_Success() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{Name: "Gulf Components", PartyType: domain.Supplier, Phone: "+96522223333"}

	suite.mockPartyRepo.On("SaveParty", ctx, mock.AnythingOfType("domain.Party")).Return(nil).Once()

	party, err := suite.service.CreateParty(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Supplier, party.PartyType)
	suite.True(party.IsActive)
	suite.NotEmpty(party.PartyID)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestRecordOpeningBalance_TargetsPartyOwner() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.OpeningBalanceRequest{Amount: "-75.250", Date: "2026-01-01", Notes: "carried over payable"}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).
		Return(&domain.Party{PartyID: partyID, PartyType: domain.Supplier}, nil).Once()

	var saved domain.OpeningBalance
	suite.mockPartyRepo.On("RecordOpeningBalance", ctx, mock.AnythingOfType("domain.OpeningBalance")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.OpeningBalance) }).
		Return(nil).Once()

	ob, err := suite.service.RecordOpeningBalance(ctx, partyID, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PartyOwner, saved.OwnerType)
	suite.Equal(partyID, saved.OwnerID)
	suite.True(ob.Amount.Equal(decimal.RequireFromString("-75.250")))
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestRecordOpeningBalance_UnknownParty() {
	ctx := context.Background()
	partyID := uuid.NewString()
	req := dto.OpeningBalanceRequest{Amount: "10", Date: "2026-01-01"}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).Return(nil, apperrors.ErrNotFound).Once()

	ob, err := suite.service.RecordOpeningBalance(ctx, partyID, req, "user-1")

	suite.Nil(ob)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "RecordOpeningBalance")
}

func (suite *PartyServiceTestSuite) TestGetPartyStatement_SaleThenPayment() {
	ctx := context.Background()
	partyID := uuid.NewString()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	records := []domain.SourceRecord{
		{SourceID: "s1", Type: domain.SourceSale, Date: base, Amount: decimal.RequireFromString("200"), CreatedAt: base},
		{SourceID: "p1", Type: domain.SourcePaymentIn, Date: base.AddDate(0, 0, 7), Amount: decimal.RequireFromString("150"), CreatedAt: base},
		{SourceID: "r1", Type: domain.SourceSaleReturn, Date: base.AddDate(0, 0, 9), Amount: decimal.RequireFromString("20"), CreatedAt: base},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).
		Return(&domain.Party{PartyID: partyID, PartyType: domain.Customer}, nil).Once()
	suite.mockSourceRepo.On("FindPartySources", ctx, partyID).Return(records, nil).Once()

	statement, err := suite.service.GetPartyStatement(ctx, partyID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Lines, 3)
	// 200 owed, 150 paid, 20 returned: 30 outstanding.
	suite.True(statement.ClosingBalance.Equal(decimal.RequireFromString("30")))
	suite.True(statement.Lines[0].Balance.Equal(decimal.RequireFromString("200")))
	suite.True(statement.Lines[1].Balance.Equal(decimal.RequireFromString("50")))
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
