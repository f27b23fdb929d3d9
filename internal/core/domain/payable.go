package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayStatus indicates whether a payable or receivable has been settled.
type PayStatus string

const (
	StatusPaid   PayStatus = "Paid"
	StatusUnpaid PayStatus = "Unpaid"
)

// IsValid reports whether the status is one of the two allowed values.
func (s PayStatus) IsValid() bool {
	return s == StatusPaid || s == StatusUnpaid
}

// Payable represents an amount the business owes to a vendor.
type Payable struct {
	PayableID  int64           `json:"payable_id"`
	VendorName string          `json:"vendor_name"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Status     PayStatus       `json:"status"`
}
