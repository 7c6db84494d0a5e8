package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/electrotrade/eterp_backend/internal/handlers"
	"github.com/electrotrade/eterp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, partyType domain.PartyType, limit int, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, partyType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) RecordOpeningBalance(ctx context.Context, partyID string, req dto.OpeningBalanceRequest, userID string) (*domain.OpeningBalance, error) {
	args := m.Called(ctx, partyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalance), args.Error(1)
}

func (m *MockPartyService) GetPartyStatement(ctx context.Context, partyID string, startDate, endDate *time.Time) (*domain.Statement, error) {
	args := m.Called(ctx, partyID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Test Suite ---
type PartyHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockPartyService *MockPartyService
	jwtSecret        string
}

func (suite *PartyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "eterp-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PartyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.Require().NoError(dto.RegisterCustomValidators())
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPartyService = new(MockPartyService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPartyRoutes(v1, suite.mockPartyService)
}

func (suite *PartyHandlerTestSuite) doJSON(method, target string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PartyHandlerTestSuite) TestGetPartyStatement_Success() {
	userID := uuid.NewString()
	partyID := uuid.NewString()
	entryDate := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	statement := &domain.Statement{
		OpeningBalance: decimal.RequireFromString("-40.500"),
		ClosingBalance: decimal.RequireFromString("59.500"),
		Lines: []domain.StatementLine{
			{
				LedgerEntry: domain.LedgerEntry{
					Date:      entryDate,
					Type:      domain.SourceSale,
					Reference: "SO-12",
					Debit:     decimal.RequireFromString("100"),
				},
				Balance: decimal.RequireFromString("59.500"),
			},
		},
	}

	suite.mockPartyService.On("GetPartyStatement", mock.Anything, partyID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(statement, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/reports/party-statement/"+partyID, nil, suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("-40.500", resp.OpeningBalance)
	suite.Equal("59.500", resp.ClosingBalance)
	suite.Require().Len(resp.Lines, 1)
	suite.Equal("2026-04-02", resp.Lines[0].Date)
	suite.Equal("100.000", resp.Lines[0].Debit)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestGetPartyStatement_WindowParams() {
	userID := uuid.NewString()
	partyID := uuid.NewString()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	statement := &domain.Statement{
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.Zero,
		Lines:          []domain.StatementLine{},
	}

	suite.mockPartyService.On("GetPartyStatement", mock.Anything, partyID, &start, &end).
		Return(statement, nil).Once()

	w := suite.doJSON(http.MethodGet,
		"/api/v1/reports/party-statement/"+partyID+"?startDate=2026-03-01&endDate=2026-03-31",
		nil, suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestGetPartyStatement_UnknownParty() {
	userID := uuid.NewString()
	partyID := uuid.NewString()

	suite.mockPartyService.On("GetPartyStatement", mock.Anything, partyID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/reports/party-statement/"+partyID, nil, suite.generateTestToken(userID))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func TestPartyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
