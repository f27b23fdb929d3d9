package dto

import (
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense entry.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ToDomain converts the request into a domain entry.
func (r CreateExpenseRequest) ToDomain() domain.Expense {
	date, _ := time.Parse(dateLayout, r.Date)
	return domain.Expense{
		Date:        date,
		Description: r.Description,
		Amount:      r.Amount,
	}
}

// ExpenseResponse defines the data returned for an expense entry.
type ExpenseResponse struct {
	ExpenseID   int64           `json:"expense_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO.
func ToExpenseResponse(entry *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   entry.ExpenseID,
		Date:        entry.Date.Format(dateLayout),
		Description: entry.Description,
		Amount:      entry.Amount,
	}
}

// ToExpenseResponseList converts a slice of domain entries to DTOs.
func ToExpenseResponseList(entries []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToExpenseResponse(&entry)
	}
	return res
}
