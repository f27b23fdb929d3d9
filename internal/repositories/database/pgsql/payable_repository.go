package pgsql

import (
	"context"
	"fmt"

	"github.com/finbooks/bookkeeping_app/internal/apperrors"
	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayableRepository struct {
	BaseRepository
}

// newPgxPayableRepository creates a new repository for accounts payable.
func newPgxPayableRepository(pool *pgxpool.Pool) portsrepo.PayableRepositoryFacade {
	return &PgxPayableRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PayableRepositoryFacade = (*PgxPayableRepository)(nil)

// ListPayables retrieves all accounts payable rows.
func (r *PgxPayableRepository) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	query := `
		SELECT payable_id, vendor_name, date, amount, status
		FROM accounts_payable;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payable, error) {
		var payable domain.Payable
		err := row.Scan(
			&payable.PayableID,
			&payable.VendorName,
			&payable.Date,
			&payable.Amount,
			&payable.Status,
		)
		return payable, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payables: %w", err)
	}

	if payables == nil {
		payables = []domain.Payable{}
	}
	return payables, nil
}

// SavePayable inserts a new payable and returns it with the id the database
// assigned.
func (r *PgxPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) (*domain.Payable, error) {
	query := `
		INSERT INTO accounts_payable (vendor_name, date, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING payable_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		payable.VendorName,
		payable.Date,
		payable.Amount,
		payable.Status,
	).Scan(&payable.PayableID)
	if err != nil {
		return nil, fmt.Errorf("failed to save payable: %w", err)
	}
	return &payable, nil
}

// UpdatePayableStatus overwrites the status column for the matching row.
func (r *PgxPayableRepository) UpdatePayableStatus(ctx context.Context, payableID int64, status domain.PayStatus) error {
	query := `
		UPDATE accounts_payable
		SET status = $1
		WHERE payable_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, status, payableID)
	if err != nil {
		return fmt.Errorf("failed to update status of payable %d: %w", payableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payable %d: %w", payableID, apperrors.ErrNotFound)
	}
	return nil
}

// DeletePayable removes the row with the given id.
func (r *PgxPayableRepository) DeletePayable(ctx context.Context, payableID int64) error {
	query := `
		DELETE FROM accounts_payable
		WHERE payable_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, payableID)
	if err != nil {
		return fmt.Errorf("failed to delete payable %d: %w", payableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payable %d: %w", payableID, apperrors.ErrNotFound)
	}
	return nil
}
