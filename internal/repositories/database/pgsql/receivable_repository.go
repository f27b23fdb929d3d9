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

type PgxReceivableRepository struct {
	BaseRepository
}

// newPgxReceivableRepository creates a new repository for accounts receivable.
func newPgxReceivableRepository(pool *pgxpool.Pool) portsrepo.ReceivableRepositoryFacade {
	return &PgxReceivableRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReceivableRepositoryFacade = (*PgxReceivableRepository)(nil)

// ListReceivables retrieves all accounts receivable rows.
func (r *PgxReceivableRepository) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	query := `
		SELECT receivable_id, customer_name, date, amount, status
		FROM accounts_receivable;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivables: %w", err)
	}
	defer rows.Close()

	receivables, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Receivable, error) {
		var receivable domain.Receivable
		err := row.Scan(
			&receivable.ReceivableID,
			&receivable.CustomerName,
			&receivable.Date,
			&receivable.Amount,
			&receivable.Status,
		)
		return receivable, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan receivables: %w", err)
	}

	if receivables == nil {
		receivables = []domain.Receivable{}
	}
	return receivables, nil
}

// SaveReceivable inserts a new receivable and returns it with the id the
// database assigned.
func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) (*domain.Receivable, error) {
	query := `
		INSERT INTO accounts_receivable (customer_name, date, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING receivable_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		receivable.CustomerName,
		receivable.Date,
		receivable.Amount,
		receivable.Status,
	).Scan(&receivable.ReceivableID)
	if err != nil {
		return nil, fmt.Errorf("failed to save receivable: %w", err)
	}
	return &receivable, nil
}

// UpdateReceivableStatus overwrites the status column for the matching row.
func (r *PgxReceivableRepository) UpdateReceivableStatus(ctx context.Context, receivableID int64, status domain.PayStatus) error {
	query := `
		UPDATE accounts_receivable
		SET status = $1
		WHERE receivable_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, status, receivableID)
	if err != nil {
		return fmt.Errorf("failed to update status of receivable %d: %w", receivableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("receivable %d: %w", receivableID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteReceivable removes the row with the given id.
func (r *PgxReceivableRepository) DeleteReceivable(ctx context.Context, receivableID int64) error {
	query := `
		DELETE FROM accounts_receivable
		WHERE receivable_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, receivableID)
	if err != nil {
		return fmt.Errorf("failed to delete receivable %d: %w", receivableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("receivable %d: %w", receivableID, apperrors.ErrNotFound)
	}
	return nil
}
