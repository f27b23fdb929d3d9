package repositories

import (
	"context"
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregate queries behind the
// report endpoints. Empty tables sum to zero, never to an error.
type ReportingRepository interface {
	// SumIncome returns SUM(amount) over all income rows.
	SumIncome(ctx context.Context) (decimal.Decimal, error)

	// SumExpense returns SUM(amount) over all expense rows.
	SumExpense(ctx context.Context) (decimal.Decimal, error)

	// SumUnpaidPayables returns SUM(amount) over payable rows with status Unpaid.
	SumUnpaidPayables(ctx context.Context) (decimal.Decimal, error)

	// SumUnpaidReceivables returns SUM(amount) over receivable rows with status Unpaid.
	SumUnpaidReceivables(ctx context.Context) (decimal.Decimal, error)

	// ListIncomeBetween returns (date, amount) pairs from income with date in
	// [from, to] inclusive, ordered by date ascending.
	ListIncomeBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowEntry, error)

	// ListExpenseBetween returns (date, amount) pairs from expense with date
	// in [from, to] inclusive, ordered by date ascending.
	ListExpenseBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowEntry, error)
}
