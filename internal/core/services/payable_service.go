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

// payableService implements the PayableSvcFacade interface.
type payableService struct {
	BaseService
	payableRepo portsrepo.PayableRepositoryFacade
}

// NewPayableService creates a new accounts payable service.
func NewPayableService(repo portsrepo.PayableRepositoryFacade) portssvc.PayableSvcFacade {
	return &payableService{payableRepo: repo}
}

var _ portssvc.PayableSvcFacade = (*payableService)(nil)

// ListPayables returns all accounts payable rows.
func (s *payableService) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	payables, err := s.payableRepo.ListPayables(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payables")
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	return payables, nil
}

// CreatePayable records a new payable and returns it with its assigned id.
func (s *payableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error) {
	saved, err := s.payableRepo.SavePayable(ctx, req.ToDomain())
	if err != nil {
		s.LogError(ctx, err, "Failed to save payable")
		return nil, fmt.Errorf("failed to save payable: %w", err)
	}
	s.LogInfo(ctx, "Payable created", slog.Int64("payable_id", saved.PayableID))
	return saved, nil
}

// UpdatePayableStatus sets the status column for the matching payable.
// A missing id is treated as a benign no-op: applying the same status twice,
// or to a row deleted meanwhile, succeeds without state change.
func (s *payableService) UpdatePayableStatus(ctx context.Context, payableID int64, status domain.PayStatus) error {
	err := s.payableRepo.UpdatePayableStatus(ctx, payableID, status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Payable status update matched no rows", slog.Int64("payable_id", payableID))
			return nil
		}
		s.LogError(ctx, err, "Failed to update payable status", slog.Int64("payable_id", payableID))
		return fmt.Errorf("failed to update payable status: %w", err)
	}
	s.LogInfo(ctx, "Payable status updated", slog.Int64("payable_id", payableID), slog.String("status", string(status)))
	return nil
}

// DeletePayable removes a payable by id.
func (s *payableService) DeletePayable(ctx context.Context, payableID int64) error {
	if err := s.payableRepo.DeletePayable(ctx, payableID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Payable deleted", slog.Int64("payable_id", payableID))
	return nil
}
