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

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.AccountTransfer, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTransfer), args.Error(1)
}

func (m *MockTransferService) ListTransfers(ctx context.Context, limit int, offset int) ([]domain.AccountTransfer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTransfer), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Test Suite ---
type TransferHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTransferService *MockTransferService
	jwtSecret           string
}

func (suite *TransferHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.Require().NoError(dto.RegisterCustomValidators())
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTransferService = new(MockTransferService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransferRoutes(v1, suite.mockTransferService)
}

func (suite *TransferHandlerTestSuite) doJSON(method, target string, body any, token string) *httptest.ResponseRecorder {
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

func (suite *TransferHandlerTestSuite) TestCreateTransfer_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateTransferRequest{
		TransferDate:  "2026-02-14",
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        "250.500",
		Notes:         "till float to bank",
	}
	created := &domain.AccountTransfer{
		TransferID:    uuid.NewString(),
		FromAccountID: reqBody.FromAccountID,
		ToAccountID:   reqBody.ToAccountID,
		Amount:        decimal.RequireFromString("250.500"),
		TransferDate:  time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		Notes:         reqBody.Notes,
	}

	suite.mockTransferService.On("CreateTransfer", mock.Anything, reqBody, userID).
		Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/account-transfers", reqBody, suite.generateTestToken(userID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransferID, resp.TransferID)
	suite.Equal("2026-02-14", resp.TransferDate)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_UnknownAccount() {
	userID := uuid.NewString()
	reqBody := dto.CreateTransferRequest{
		TransferDate:  "2026-02-14",
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        "10",
	}

	suite.mockTransferService.On("CreateTransfer", mock.Anything, reqBody, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/account-transfers", reqBody, suite.generateTestToken(userID))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestListTransfers_Success() {
	userID := uuid.NewString()
	transfers := []domain.AccountTransfer{
		{
			TransferID:    uuid.NewString(),
			FromAccountID: uuid.NewString(),
			ToAccountID:   uuid.NewString(),
			Amount:        decimal.RequireFromString("75.250"),
			TransferDate:  time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	suite.mockTransferService.On("ListTransfers", mock.Anything, 20, 0).
		Return(transfers, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/account-transfers", nil, suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(transfers[0].TransferID, resp[0].TransferID)
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_MissingToken() {
	reqBody := dto.CreateTransferRequest{
		TransferDate:  "2026-02-14",
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		Amount:        "10",
	}

	w := suite.doJSON(http.MethodPost, "/api/v1/account-transfers", reqBody, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "CreateTransfer")
}

func TestTransferHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
