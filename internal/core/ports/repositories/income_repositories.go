package repositories

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
)

// IncomeReader defines read operations for income entries.
type IncomeReader interface {
	// ListIncome retrieves all income entries. Ordering is whatever the
	// storage engine returns; the caller must not rely on it.
	ListIncome(ctx context.Context) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income entries.
type IncomeWriter interface {
	// SaveIncome persists a new income entry and returns it with the
	// store-assigned id.
	SaveIncome(ctx context.Context, entry domain.Income) (*domain.Income, error)

	// DeleteIncome removes the entry with the given id. Returns
	// apperrors.ErrNotFound when no row matched.
	DeleteIncome(ctx context.Context, incomeID int64) error
}

// IncomeRepositoryFacade combines all income repository interfaces.
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
