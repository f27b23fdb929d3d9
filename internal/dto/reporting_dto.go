package dto

import (
	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncomeStatementResponse represents the income statement report response.
type IncomeStatementResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	ProfitLoss   decimal.Decimal `json:"profit_loss"`
}

// ToIncomeStatementResponse converts a domain income statement to a DTO.
func ToIncomeStatementResponse(report *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		TotalIncome:  report.TotalIncome,
		TotalExpense: report.TotalExpense,
		ProfitLoss:   report.ProfitLoss,
	}
}

// BalanceSheetResponse represents the balance sheet report response.
type BalanceSheetResponse struct {
	PayableBalance    decimal.Decimal `json:"payable_balance"`
	ReceivableBalance decimal.Decimal `json:"receivable_balance"`
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO.
func ToBalanceSheetResponse(report *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		PayableBalance:    report.PayableBalance,
		ReceivableBalance: report.ReceivableBalance,
	}
}

// CashFlowEntryResponse is one dated amount in the cash flow response.
type CashFlowEntryResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// CashFlowResponse represents the cash flow report response.
type CashFlowResponse struct {
	Income   []CashFlowEntryResponse `json:"income"`
	Expenses []CashFlowEntryResponse `json:"expenses"`
}

// CashFlowParams defines the query parameters for the cash flow report.
// Both boundaries are inclusive.
type CashFlowParams struct {
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

// ToCashFlowResponse converts a domain cash flow report to a DTO.
func ToCashFlowResponse(report *domain.CashFlowReport) CashFlowResponse {
	response := CashFlowResponse{
		Income:   make([]CashFlowEntryResponse, len(report.Income)),
		Expenses: make([]CashFlowEntryResponse, len(report.Expenses)),
	}
	for i, entry := range report.Income {
		response.Income[i] = CashFlowEntryResponse{
			Date:   entry.Date.Format(dateLayout),
			Amount: entry.Amount,
		}
	}
	for i, entry := range report.Expenses {
		response.Expenses[i] = CashFlowEntryResponse{
			Date:   entry.Date.Format(dateLayout),
			Amount: entry.Amount,
		}
	}
	return response
}
