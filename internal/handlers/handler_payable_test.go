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

// --- Mock PayableService ---
type MockPayableService struct {
	mock.Mock
}

func (m *MockPayableService) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payable), args.Error(1)
}

func (m *MockPayableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}

func (m *MockPayableService) UpdatePayableStatus(ctx context.Context, payableID int64, status domain.PayStatus) error {
	args := m.Called(ctx, payableID, status)
	return args.Error(0)
}

func (m *MockPayableService) DeletePayable(ctx context.Context, payableID int64) error {
	args := m.Called(ctx, payableID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.PayableSvcFacade = (*MockPayableService)(nil)

// --- Test Suite ---
type PayableHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockPayableService
}

func (suite *PayableHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockPayableService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPayableRoutes(v1, suite.mockService)
}

// --- Test Cases ---

func (suite *PayableHandlerTestSuite) TestCreatePayable_Success() {
	reqBody := dto.CreatePayableRequest{
		VendorName: "Office Supply Co",
		Date:       "2025-06-01",
		Amount:     decimal.RequireFromString("300.25"),
	}
	savedPayable := &domain.Payable{
		PayableID:  11,
		VendorName: reqBody.VendorName,
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:     reqBody.Amount,
		Status:     domain.StatusUnpaid,
	}
	suite.mockService.On("CreatePayable", mock.Anything, mock.MatchedBy(func(r dto.CreatePayableRequest) bool {
		return r.VendorName == reqBody.VendorName && r.Amount.Equal(reqBody.Amount)
	})).Return(savedPayable, nil).Once()

	payload, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payable", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.PayableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(11), body.PayableID)
	suite.Equal(domain.StatusUnpaid, body.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PayableHandlerTestSuite) TestCreatePayable_RejectsUnknownStatus() {
	payload := []byte(`{"vendor_name":"Office Supply Co","date":"2025-06-01","amount":"300.25","status":"Pending"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payable", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreatePayable")
}

func (suite *PayableHandlerTestSuite) TestUpdatePayableStatus_Success() {
	suite.mockService.On("UpdatePayableStatus", mock.Anything, int64(5), domain.StatusPaid).Return(nil).Once()

	payload := []byte(`{"status":"Paid"}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/payable/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Updated successfully", body.Message)
	suite.mockService.AssertExpectations(suite.T())
}

// The service reports success for a missing id, so the handler returns the
// same 200 payload as a matched update.
func (suite *PayableHandlerTestSuite) TestUpdatePayableStatus_MissingID() {
	suite.mockService.On("UpdatePayableStatus", mock.Anything, int64(404), domain.StatusPaid).Return(nil).Once()

	payload := []byte(`{"status":"Paid"}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/payable/404", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Updated successfully", body.Message)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PayableHandlerTestSuite) TestUpdatePayableStatus_RejectsUnknownStatus() {
	payload := []byte(`{"status":"Settled"}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/payable/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "UpdatePayableStatus")
}

func (suite *PayableHandlerTestSuite) TestUpdatePayableStatus_ServiceError() {
	suite.mockService.On("UpdatePayableStatus", mock.Anything, int64(5), domain.StatusUnpaid).Return(assert.AnError).Once()

	payload := []byte(`{"status":"Unpaid"}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/payable/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *PayableHandlerTestSuite) TestDeletePayable_NotFound() {
	suite.mockService.On("DeletePayable", mock.Anything, int64(99)).Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/payable/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var body dto.DeleteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	suite.Equal("No payable record found with that ID", body.Message)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestPayableHandler(t *testing.T) {
	suite.Run(t, new(PayableHandlerTestSuite))
}
