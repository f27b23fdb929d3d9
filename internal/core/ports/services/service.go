package services

// ServiceContainer holds all the service facades so handlers can be wired
// from one place.
type ServiceContainer struct {
	Income     IncomeSvcFacade
	Expense    ExpenseSvcFacade
	Payable    PayableSvcFacade
	Receivable ReceivableSvcFacade
	Reporting  ReportingService
}
