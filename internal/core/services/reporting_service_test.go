package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/finbooks/bookkeeping_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumIncome(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumExpense(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumUnpaidPayables(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumUnpaidReceivables(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ListIncomeBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowEntry), args.Error(1)
}

func (m *MockReportingRepository) ListExpenseBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowEntry), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestIncomeStatement_Arithmetic() {
	ctx := context.Background()
	totalIncome := decimal.RequireFromString("1500.75")
	totalExpense := decimal.RequireFromString("420.25")

	suite.mockRepo.On("SumIncome", ctx).Return(totalIncome, nil).Once()
	suite.mockRepo.On("SumExpense", ctx).Return(totalExpense, nil).Once()

	report, err := suite.service.IncomeStatement(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.TotalIncome.Equal(totalIncome))
	suite.True(report.TotalExpense.Equal(totalExpense))
	suite.True(report.ProfitLoss.Equal(decimal.RequireFromString("1080.50")))
	suite.mockRepo.AssertExpectations(suite.T())
}

// Expenses above income yield a negative profit figure, not an error.
func (suite *ReportingServiceTestSuite) TestIncomeStatement_Loss() {
	ctx := context.Background()

	suite.mockRepo.On("SumIncome", ctx).Return(decimal.NewFromInt(100), nil).Once()
	suite.mockRepo.On("SumExpense", ctx).Return(decimal.NewFromInt(250), nil).Once()

	report, err := suite.service.IncomeStatement(ctx)

	suite.Require().NoError(err)
	suite.True(report.ProfitLoss.Equal(decimal.NewFromInt(-150)))
	suite.mockRepo.AssertExpectations(suite.T())
}

// Empty tables report zero totals rather than nulls or errors.
func (suite *ReportingServiceTestSuite) TestIncomeStatement_EmptyTables() {
	ctx := context.Background()

	suite.mockRepo.On("SumIncome", ctx).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("SumExpense", ctx).Return(decimal.Zero, nil).Once()

	report, err := suite.service.IncomeStatement(ctx)

	suite.Require().NoError(err)
	suite.True(report.TotalIncome.IsZero())
	suite.True(report.TotalExpense.IsZero())
	suite.True(report.ProfitLoss.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_IncomeQueryError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SumIncome", ctx).Return(decimal.Zero, expectedErr).Once()

	report, err := suite.service.IncomeStatement(ctx)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumExpense")
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_Success() {
	ctx := context.Background()
	payableBalance := decimal.RequireFromString("900.00")
	receivableBalance := decimal.RequireFromString("1200.50")

	suite.mockRepo.On("SumUnpaidPayables", ctx).Return(payableBalance, nil).Once()
	suite.mockRepo.On("SumUnpaidReceivables", ctx).Return(receivableBalance, nil).Once()

	report, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.PayableBalance.Equal(payableBalance))
	suite.True(report.ReceivableBalance.Equal(receivableBalance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ReceivableQueryError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SumUnpaidPayables", ctx).Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("SumUnpaidReceivables", ctx).Return(decimal.Zero, expectedErr).Once()

	report, err := suite.service.BalanceSheet(ctx)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_Success() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	incomeEntries := []domain.CashFlowEntry{
		{Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200)},
		{Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(350)},
	}
	expenseEntries := []domain.CashFlowEntry{
		{Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(75)},
	}

	suite.mockRepo.On("ListIncomeBetween", ctx, from, to).Return(incomeEntries, nil).Once()
	suite.mockRepo.On("ListExpenseBetween", ctx, from, to).Return(expenseEntries, nil).Once()

	report, err := suite.service.CashFlow(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(incomeEntries, report.Income)
	suite.Equal(expenseEntries, report.Expenses)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_EmptyRange() {
	ctx := context.Background()
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("ListIncomeBetween", ctx, from, to).Return([]domain.CashFlowEntry{}, nil).Once()
	suite.mockRepo.On("ListExpenseBetween", ctx, from, to).Return([]domain.CashFlowEntry{}, nil).Once()

	report, err := suite.service.CashFlow(ctx, from, to)

	suite.Require().NoError(err)
	suite.NotNil(report.Income)
	suite.NotNil(report.Expenses)
	suite.Empty(report.Income)
	suite.Empty(report.Expenses)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_ExpenseQueryError() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	expectedErr := assert.AnError

	suite.mockRepo.On("ListIncomeBetween", ctx, from, to).Return([]domain.CashFlowEntry{}, nil).Once()
	suite.mockRepo.On("ListExpenseBetween", ctx, from, to).Return(nil, expectedErr).Once()

	report, err := suite.service.CashFlow(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
