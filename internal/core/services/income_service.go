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

// incomeService implements the IncomeSvcFacade interface.
type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepositoryFacade
}

// NewIncomeService creates a new income service.
func NewIncomeService(repo portsrepo.IncomeRepositoryFacade) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: repo}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// ListIncome returns all recorded income entries.
func (s *incomeService) ListIncome(ctx context.Context) ([]domain.Income, error) {
	entries, err := s.incomeRepo.ListIncome(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income entries")
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}
	return entries, nil
}

// CreateIncome records a new income entry and returns it with its assigned id.
func (s *incomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Income, error) {
	saved, err := s.incomeRepo.SaveIncome(ctx, req.ToDomain())
	if err != nil {
		s.LogError(ctx, err, "Failed to save income entry")
		return nil, fmt.Errorf("failed to save income entry: %w", err)
	}
	s.LogInfo(ctx, "Income entry created", slog.Int64("income_id", saved.IncomeID))
	return saved, nil
}

// DeleteIncome removes an income entry by id.
func (s *incomeService) DeleteIncome(ctx context.Context, incomeID int64) error {
	if err := s.incomeRepo.DeleteIncome(ctx, incomeID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Income entry deleted", slog.Int64("income_id", incomeID))
	return nil
}
