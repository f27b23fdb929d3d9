package services

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/finbooks/bookkeeping_app/internal/dto"
)

// PayableSvcFacade defines the operations over accounts payable.
type PayableSvcFacade interface {
	ListPayables(ctx context.Context) ([]domain.Payable, error)
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error)

	// UpdatePayableStatus sets the status for the matching row. A missing id
	// is a benign no-op, not an error; callers must tolerate it idempotently.
	UpdatePayableStatus(ctx context.Context, payableID int64, status domain.PayStatus) error

	DeletePayable(ctx context.Context, payableID int64) error
}
