package services

import (
	"context"
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
)

// ReportingService defines the three derived reports. Reports are pure
// read-side aggregations; nothing here mutates persisted state.
type ReportingService interface {
	// IncomeStatement returns the all-time income and expense totals and the
	// resulting profit or loss.
	IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)

	// BalanceSheet returns the outstanding unpaid payable and receivable totals.
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)

	// CashFlow returns the dated income and expense entries inside
	// [from, to] inclusive, ordered by date ascending.
	CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error)
}
