package services

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/finbooks/bookkeeping_app/internal/dto"
)

// ExpenseSvcFacade defines the operations over expense entries.
type ExpenseSvcFacade interface {
	ListExpense(ctx context.Context) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64) error
}
