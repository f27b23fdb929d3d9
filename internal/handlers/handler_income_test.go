package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finbooks/bookkeeping_app/internal/apperrors"
	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/finbooks/bookkeeping_app/internal/dto"
	"github.com/finbooks/bookkeeping_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock IncomeService ---
type MockIncomeService struct {
	mock.Mock
}

func (m *MockIncomeService) ListIncome(ctx context.Context) ([]domain.Income, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Income, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeService) DeleteIncome(ctx context.Context, incomeID int64) error {
	args := m.Called(ctx, incomeID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.IncomeSvcFacade = (*MockIncomeService)(nil)

// --- Test Suite ---
type IncomeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockIncomeService
}

func (suite *IncomeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockIncomeService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterIncomeRoutes(v1, suite.mockService)
}

// --- Test Cases ---

func (suite *IncomeHandlerTestSuite) TestListIncome_Success() {
	entries := []domain.Income{
		{IncomeID: 1, Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Description: "Invoice 1042", Amount: decimal.RequireFromString("1200.00")},
		{IncomeID: 2, Date: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), Description: "Consulting", Amount: decimal.RequireFromString("450.50")},
	}
	suite.mockService.On("ListIncome", mock.Anything).Return(entries, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/income", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.IncomeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal(int64(1), body[0].IncomeID)
	suite.Equal("2025-01-05", body[0].Date)
	suite.Equal("Invoice 1042", body[0].Description)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestListIncome_ServiceError() {
	suite.mockService.On("ListIncome", mock.Anything).Return(nil, assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/income", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestCreateIncome_Success() {
	reqBody := dto.CreateIncomeRequest{
		Date:        "2025-03-14",
		Description: "March retainer",
		Amount:      decimal.RequireFromString("900.00"),
	}
	savedEntry := &domain.Income{
		IncomeID:    7,
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: reqBody.Description,
		Amount:      reqBody.Amount,
	}
	suite.mockService.On("CreateIncome", mock.Anything, mock.MatchedBy(func(r dto.CreateIncomeRequest) bool {
		return r.Date == reqBody.Date && r.Description == reqBody.Description && r.Amount.Equal(reqBody.Amount)
	})).Return(savedEntry, nil).Once()

	payload, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/income", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.IncomeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(7), body.IncomeID)
	suite.Equal("2025-03-14", body.Date)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestCreateIncome_MalformedDate() {
	payload := []byte(`{"date":"14-03-2025","description":"March retainer","amount":"900.00"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/income", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateIncome")
}

func (suite *IncomeHandlerTestSuite) TestCreateIncome_MissingFields() {
	payload := []byte(`{"date":"2025-03-14"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/income", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateIncome")
}

func (suite *IncomeHandlerTestSuite) TestDeleteIncome_Success() {
	suite.mockService.On("DeleteIncome", mock.Anything, int64(7)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/income/7", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DeleteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Equal("Income record deleted successfully", body.Message)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestDeleteIncome_NotFound() {
	suite.mockService.On("DeleteIncome", mock.Anything, int64(99)).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/income/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var body dto.DeleteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	suite.Equal("No income record found with that ID", body.Message)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestDeleteIncome_ServiceError() {
	suite.mockService.On("DeleteIncome", mock.Anything, int64(7)).Return(assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/income/7", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)

	var body dto.DeleteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestDeleteIncome_InvalidID() {
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/income/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "DeleteIncome")
}

// --- Run Test Suite ---
func TestIncomeHandler(t *testing.T) {
	suite.Run(t, new(IncomeHandlerTestSuite))
}
