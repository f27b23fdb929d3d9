package repositories

// RepositoryProvider bundles all repository implementations so they can be
// passed to the service layer as one unit.
type RepositoryProvider struct {
	IncomeRepo     IncomeRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	PayableRepo    PayableRepositoryFacade
	ReceivableRepo ReceivableRepositoryFacade
	ReportingRepo  ReportingRepository
}
