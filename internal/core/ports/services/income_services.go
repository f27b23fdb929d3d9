package services

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/finbooks/bookkeeping_app/internal/dto"
)

// IncomeSvcFacade defines the operations over income entries.
type IncomeSvcFacade interface {
	// ListIncome returns every recorded income entry.
	ListIncome(ctx context.Context) ([]domain.Income, error)

	// CreateIncome records a new entry and returns it with its assigned id.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (*domain.Income, error)

	// DeleteIncome removes an entry by id; apperrors.ErrNotFound when absent.
	DeleteIncome(ctx context.Context, incomeID int64) error
}
