package repositories

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
)

// ReceivableReader defines read operations for accounts receivable.
type ReceivableReader interface {
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
}

// ReceivableWriter defines write operations for accounts receivable.
type ReceivableWriter interface {
	SaveReceivable(ctx context.Context, receivable domain.Receivable) (*domain.Receivable, error)

	// UpdateReceivableStatus overwrites the status column for the matching
	// row. Returns apperrors.ErrNotFound when no row matched.
	UpdateReceivableStatus(ctx context.Context, receivableID int64, status domain.PayStatus) error

	// DeleteReceivable removes the row with the given id. Returns
	// apperrors.ErrNotFound when no row matched.
	DeleteReceivable(ctx context.Context, receivableID int64) error
}

// ReceivableRepositoryFacade combines all receivable repository interfaces.
type ReceivableRepositoryFacade interface {
	ReceivableReader
	ReceivableWriter
}
