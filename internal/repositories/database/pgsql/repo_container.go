package pgsql

import (
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IncomeRepo:     newPgxIncomeRepository(dbPool),
		ExpenseRepo:    newPgxExpenseRepository(dbPool),
		PayableRepo:    newPgxPayableRepository(dbPool),
		ReceivableRepo: newPgxReceivableRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
	}
}
