package services

import (
	portsrepo "github.com/finbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/bookkeeping_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Income:     NewIncomeService(repos.IncomeRepo),
		Expense:    NewExpenseService(repos.ExpenseRepo),
		Payable:    NewPayableService(repos.PayableRepo),
		Receivable: NewReceivableService(repos.ReceivableRepo),
		Reporting:  NewReportingService(repos.ReportingRepo),
	}
}
