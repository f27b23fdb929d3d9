package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// sumQuery runs a single-value aggregate query. SUM over an empty table is
// NULL, so every query coalesces to zero.
func (r *reportingRepository) sumQuery(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumIncome returns SUM(amount) over all income rows.
func (r *reportingRepository) SumIncome(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS total_income
		FROM income;
	`
	total, err := r.sumQuery(ctx, query)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error querying income total: %w", err)
	}
	return total, nil
}

// SumExpense returns SUM(amount) over all expense rows.
func (r *reportingRepository) SumExpense(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS total_expense
		FROM expense;
	`
	total, err := r.sumQuery(ctx, query)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error querying expense total: %w", err)
	}
	return total, nil
}

// SumUnpaidPayables returns SUM(amount) over payable rows with status Unpaid.
func (r *reportingRepository) SumUnpaidPayables(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS payable_balance
		FROM accounts_payable
		WHERE status = $1;
	`
	total, err := r.sumQuery(ctx, query, domain.StatusUnpaid)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error querying payable balance: %w", err)
	}
	return total, nil
}

// SumUnpaidReceivables returns SUM(amount) over receivable rows with status Unpaid.
func (r *reportingRepository) SumUnpaidReceivables(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS receivable_balance
		FROM accounts_receivable
		WHERE status = $1;
	`
	total, err := r.sumQuery(ctx, query, domain.StatusUnpaid)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error querying receivable balance: %w", err)
	}
	return total, nil
}

// listBetween runs a (date, amount) range query against one of the entry
// tables. BETWEEN is inclusive on both ends.
func (r *reportingRepository) listBetween(ctx context.Context, query string, from, to time.Time) ([]domain.CashFlowEntry, error) {
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CashFlowEntry, error) {
		var entry domain.CashFlowEntry
		err := row.Scan(&entry.Date, &entry.Amount)
		return entry, err
	})
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []domain.CashFlowEntry{}
	}
	return entries, nil
}

// ListIncomeBetween returns income (date, amount) pairs inside [from, to],
// ordered by date ascending.
func (r *reportingRepository) ListIncomeBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowEntry, error) {
	query := `
		SELECT date, amount
		FROM income
		WHERE date BETWEEN $1 AND $2
		ORDER BY date;
	`
	entries, err := r.listBetween(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying income entries for cash flow: %w", err)
	}
	return entries, nil
}

// ListExpenseBetween returns expense (date, amount) pairs inside [from, to],
// ordered by date ascending.
func (r *reportingRepository) ListExpenseBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowEntry, error) {
	query := `
		SELECT date, amount
		FROM expense
		WHERE date BETWEEN $1 AND $2
		ORDER BY date;
	`
	entries, err := r.listBetween(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expense entries for cash flow: %w", err)
	}
	return entries, nil
}
