package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/finbooks/bookkeeping_app/internal/dto"
)

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// ListExpense returns all recorded expense entries.
func (s *expenseService) ListExpense(ctx context.Context) ([]domain.Expense, error) {
	entries, err := s.expenseRepo.ListExpense(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense entries")
		return nil, fmt.Errorf("failed to list expense entries: %w", err)
	}
	return entries, nil
}

// CreateExpense records a new expense entry and returns it with its assigned id.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	saved, err := s.expenseRepo.SaveExpense(ctx, req.ToDomain())
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense entry")
		return nil, fmt.Errorf("failed to save expense entry: %w", err)
	}
	s.LogInfo(ctx, "Expense entry created", slog.Int64("expense_id", saved.ExpenseID))
	return saved, nil
}

// DeleteExpense removes an expense entry by id.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Expense entry deleted", slog.Int64("expense_id", expenseID))
	return nil
}
