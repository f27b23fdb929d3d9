package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a single recorded income entry.
type Income struct {
	IncomeID    int64           `json:"income_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
