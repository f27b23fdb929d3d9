package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
)

// reportingService implements the ReportingService interface.
//
// Each report issues its two queries sequentially on the shared pool without
// a wrapping transaction, so the two sums can observe different snapshots
// under concurrent writes. That inconsistency window is accepted.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// IncomeStatement computes the all-time income and expense totals and the
// resulting profit or loss. There is no date filter on this report.
func (s *reportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	totalIncome, err := s.reportingRepo.SumIncome(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum income for income statement")
		return nil, fmt.Errorf("failed to retrieve income total: %w", err)
	}

	totalExpense, err := s.reportingRepo.SumExpense(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum expense for income statement")
		return nil, fmt.Errorf("failed to retrieve expense total: %w", err)
	}

	report := &domain.IncomeStatement{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		ProfitLoss:   totalIncome.Sub(totalExpense),
	}

	s.LogInfo(ctx, "Income statement generated",
		slog.String("total_income", totalIncome.String()),
		slog.String("total_expense", totalExpense.String()))
	return report, nil
}

// BalanceSheet computes the outstanding unpaid payable and receivable totals.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	payableBalance, err := s.reportingRepo.SumUnpaidPayables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum unpaid payables for balance sheet")
		return nil, fmt.Errorf("failed to retrieve payable balance: %w", err)
	}

	receivableBalance, err := s.reportingRepo.SumUnpaidReceivables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum unpaid receivables for balance sheet")
		return nil, fmt.Errorf("failed to retrieve receivable balance: %w", err)
	}

	report := &domain.BalanceSheet{
		PayableBalance:    payableBalance,
		ReceivableBalance: receivableBalance,
	}

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("payable_balance", payableBalance.String()),
		slog.String("receivable_balance", receivableBalance.String()))
	return report, nil
}

// CashFlow returns the raw dated income and expense entries inside
// [from, to] inclusive, ordered by date ascending. No aggregation is done;
// the rows are returned for the caller to chart.
func (s *reportingService) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	income, err := s.reportingRepo.ListIncomeBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income entries for cash flow report")
		return nil, fmt.Errorf("failed to retrieve income entries: %w", err)
	}

	expenses, err := s.reportingRepo.ListExpenseBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense entries for cash flow report")
		return nil, fmt.Errorf("failed to retrieve expense entries: %w", err)
	}

	report := &domain.CashFlowReport{
		Income:   income,
		Expenses: expenses,
	}

	s.LogInfo(ctx, "Cash flow report generated",
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
		slog.Int("income_rows", len(income)),
		slog.Int("expense_rows", len(expenses)))
	return report, nil
}
