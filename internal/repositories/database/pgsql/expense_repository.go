package pgsql

import (
	"context"
	"fmt"

	"github.com/finbooks/bookkeeping_app/internal/apperrors"
	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense entries.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// ListExpense retrieves all expense entries.
func (r *PgxExpenseRepository) ListExpense(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, date, description, amount
		FROM expense;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense entries: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Expense, error) {
		var entry domain.Expense
		err := row.Scan(
			&entry.ExpenseID,
			&entry.Date,
			&entry.Description,
			&entry.Amount,
		)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense entries: %w", err)
	}

	if entries == nil {
		entries = []domain.Expense{}
	}
	return entries, nil
}

// SaveExpense inserts a new expense entry and returns it with the id the
// database assigned.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, entry domain.Expense) (*domain.Expense, error) {
	query := `
		INSERT INTO expense (date, description, amount)
		VALUES ($1, $2, $3)
		RETURNING expense_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		entry.Date,
		entry.Description,
		entry.Amount,
	).Scan(&entry.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to save expense entry: %w", err)
	}
	return &entry, nil
}

// DeleteExpense removes the entry with the given id.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	query := `
		DELETE FROM expense
		WHERE expense_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense entry %d: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense entry %d: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}
