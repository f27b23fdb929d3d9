package repositories

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense entries.
type ExpenseReader interface {
	ListExpense(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense entries.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, entry domain.Expense) (*domain.Expense, error)

	// DeleteExpense removes the entry with the given id. Returns
	// apperrors.ErrNotFound when no row matched.
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
