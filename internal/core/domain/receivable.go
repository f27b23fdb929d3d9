package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable represents an amount a customer owes to the business.
type Receivable struct {
	ReceivableID int64           `json:"receivable_id"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       PayStatus       `json:"status"`
}
