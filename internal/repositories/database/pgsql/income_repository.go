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

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for income entries.
func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

// ListIncome retrieves all income entries. No ORDER BY: ordering is whatever
// the storage engine returns.
func (r *PgxIncomeRepository) ListIncome(ctx context.Context) ([]domain.Income, error) {
	query := `
		SELECT income_id, date, description, amount
		FROM income;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query income entries: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Income, error) {
		var entry domain.Income
		err := row.Scan(
			&entry.IncomeID,
			&entry.Date,
			&entry.Description,
			&entry.Amount,
		)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan income entries: %w", err)
	}

	if entries == nil {
		entries = []domain.Income{}
	}
	return entries, nil
}

// SaveIncome inserts a new income entry and returns it with the id the
// database assigned.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, entry domain.Income) (*domain.Income, error) {
	query := `
		INSERT INTO income (date, description, amount)
		VALUES ($1, $2, $3)
		RETURNING income_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		entry.Date,
		entry.Description,
		entry.Amount,
	).Scan(&entry.IncomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to save income entry: %w", err)
	}
	return &entry, nil
}

// DeleteIncome removes the entry with the given id.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID int64) error {
	query := `
		DELETE FROM income
		WHERE income_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, incomeID)
	if err != nil {
		return fmt.Errorf("failed to delete income entry %d: %w", incomeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income entry %d: %w", incomeID, apperrors.ErrNotFound)
	}
	return nil
}
