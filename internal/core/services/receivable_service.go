package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finbooks/bookkeeping_app/internal/apperrors"
	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/finbooks/bookkeeping_app/internal/dto"
)

// receivableService implements the ReceivableSvcFacade interface.
type receivableService struct {
	BaseService
	receivableRepo portsrepo.ReceivableRepositoryFacade
}

// NewReceivableService creates a new accounts receivable service.
func NewReceivableService(repo portsrepo.ReceivableRepositoryFacade) portssvc.ReceivableSvcFacade {
	return &receivableService{receivableRepo: repo}
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

// ListReceivables returns all accounts receivable rows.
func (s *receivableService) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	receivables, err := s.receivableRepo.ListReceivables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receivables")
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	return receivables, nil
}

// CreateReceivable records a new receivable and returns it with its assigned id.
func (s *receivableService) CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error) {
	saved, err := s.receivableRepo.SaveReceivable(ctx, req.ToDomain())
	if err != nil {
		s.LogError(ctx, err, "Failed to save receivable")
		return nil, fmt.Errorf("failed to save receivable: %w", err)
	}
	s.LogInfo(ctx, "Receivable created", slog.Int64("receivable_id", saved.ReceivableID))
	return saved, nil
}

// UpdateReceivableStatus sets the status column for the matching receivable.
// A missing id is treated as a benign no-op.
func (s *receivableService) UpdateReceivableStatus(ctx context.Context, receivableID int64, status domain.PayStatus) error {
	err := s.receivableRepo.UpdateReceivableStatus(ctx, receivableID, status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Receivable status update matched no rows", slog.Int64("receivable_id", receivableID))
			return nil
		}
		s.LogError(ctx, err, "Failed to update receivable status", slog.Int64("receivable_id", receivableID))
		return fmt.Errorf("failed to update receivable status: %w", err)
	}
	s.LogInfo(ctx, "Receivable status updated", slog.Int64("receivable_id", receivableID), slog.String("status", string(status)))
	return nil
}

// DeleteReceivable removes a receivable by id.
func (s *receivableService) DeleteReceivable(ctx context.Context, receivableID int64) error {
	if err := s.receivableRepo.DeleteReceivable(ctx, receivableID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Receivable deleted", slog.Int64("receivable_id", receivableID))
	return nil
}
