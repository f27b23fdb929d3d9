package repositories

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
)

// PayableReader defines read operations for accounts payable.
type PayableReader interface {
	ListPayables(ctx context.Context) ([]domain.Payable, error)
}

// PayableWriter defines write operations for accounts payable.
type PayableWriter interface {
	SavePayable(ctx context.Context, payable domain.Payable) (*domain.Payable, error)

	// UpdatePayableStatus overwrites the status column for the matching row.
	// Returns apperrors.ErrNotFound when no row matched; the caller decides
	// whether that is an error.
	UpdatePayableStatus(ctx context.Context, payableID int64, status domain.PayStatus) error

	// DeletePayable removes the row with the given id. Returns
	// apperrors.ErrNotFound when no row matched.
	DeletePayable(ctx context.Context, payableID int64) error
}

// PayableRepositoryFacade combines all payable repository interfaces.
type PayableRepositoryFacade interface {
	PayableReader
	PayableWriter
}
