package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeStatement holds the all-time income and expense totals.
type IncomeStatement struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	ProfitLoss   decimal.Decimal
}

// BalanceSheet holds the outstanding unpaid payable and receivable totals.
// This is the narrow bookkeeping sense, not a full accounting balance sheet.
type BalanceSheet struct {
	PayableBalance    decimal.Decimal
	ReceivableBalance decimal.Decimal
}

// CashFlowEntry is one dated amount inside a cash flow report.
type CashFlowEntry struct {
	Date   time.Time
	Amount decimal.Decimal
}

// CashFlowReport lists the income and expense entries inside a date range,
// ordered by date ascending. Rows are returned raw for the caller to chart.
type CashFlowReport struct {
	Income   []CashFlowEntry
	Expenses []CashFlowEntry
}
