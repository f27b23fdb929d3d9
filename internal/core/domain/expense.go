package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense entry.
type Expense struct {
	ExpenseID   int64           `json:"expense_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
