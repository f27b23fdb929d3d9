package dto

import (
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayableRequest defines the data needed to record an accounts payable
// entry. Status defaults to Unpaid when omitted.
type CreatePayableRequest struct {
	VendorName string           `json:"vendor_name" binding:"required"`
	Date       string           `json:"date" binding:"required,datetime=2006-01-02"`
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	Status     domain.PayStatus `json:"status" binding:"omitempty,paystatus"`
}

// ToDomain converts the request into a domain payable, applying the Unpaid
// default for a missing status.
func (r CreatePayableRequest) ToDomain() domain.Payable {
	date, _ := time.Parse(dateLayout, r.Date)
	status := r.Status
	if status == "" {
		status = domain.StatusUnpaid
	}
	return domain.Payable{
		VendorName: r.VendorName,
		Date:       date,
		Amount:     r.Amount,
		Status:     status,
	}
}

// UpdateStatusRequest carries the new status for a payable or receivable.
type UpdateStatusRequest struct {
	Status domain.PayStatus `json:"status" binding:"required,paystatus"`
}

// PayableResponse defines the data returned for a payable. Field names
// mirror the accounts_payable table columns.
type PayableResponse struct {
	PayableID  int64            `json:"payable_id"`
	VendorName string           `json:"vendor_name"`
	Date       string           `json:"date"`
	Amount     decimal.Decimal  `json:"amount"`
	Status     domain.PayStatus `json:"status"`
}

// ToPayableResponse converts a domain.Payable to a PayableResponse DTO.
func ToPayableResponse(payable *domain.Payable) PayableResponse {
	return PayableResponse{
		PayableID:  payable.PayableID,
		VendorName: payable.VendorName,
		Date:       payable.Date.Format(dateLayout),
		Amount:     payable.Amount,
		Status:     payable.Status,
	}
}

// ToPayableResponseList converts a slice of domain payables to DTOs.
func ToPayableResponseList(payables []domain.Payable) []PayableResponse {
	res := make([]PayableResponse, len(payables))
	for i, payable := range payables {
		res[i] = ToPayableResponse(&payable)
	}
	return res
}
