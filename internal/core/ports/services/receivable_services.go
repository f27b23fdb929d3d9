package services

import (
	"context"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/finbooks/bookkeeping_app/internal/dto"
)

// ReceivableSvcFacade defines the operations over accounts receivable.
type ReceivableSvcFacade interface {
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
	CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error)

	// UpdateReceivableStatus sets the status for the matching row. A missing
	// id is a benign no-op, not an error.
	UpdateReceivableStatus(ctx context.Context, receivableID int64, status domain.PayStatus) error

	DeleteReceivable(ctx context.Context, receivableID int64) error
}
