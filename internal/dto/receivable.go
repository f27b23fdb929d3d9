package dto

import (
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceivableRequest defines the data needed to record an accounts
// receivable entry. Status defaults to Unpaid when omitted.
type CreateReceivableRequest struct {
	CustomerName string           `json:"customer_name" binding:"required"`
	Date         string           `json:"date" binding:"required,datetime=2006-01-02"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
	Status       domain.PayStatus `json:"status" binding:"omitempty,paystatus"`
}

// ToDomain converts the request into a domain receivable, applying the
// Unpaid default for a missing status.
func (r CreateReceivableRequest) ToDomain() domain.Receivable {
	date, _ := time.Parse(dateLayout, r.Date)
	status := r.Status
	if status == "" {
		status = domain.StatusUnpaid
	}
	return domain.Receivable{
		CustomerName: r.CustomerName,
		Date:         date,
		Amount:       r.Amount,
		Status:       status,
	}
}

// ReceivableResponse defines the data returned for a receivable. Field names
// mirror the accounts_receivable table columns.
type ReceivableResponse struct {
	ReceivableID int64            `json:"receivable_id"`
	CustomerName string           `json:"customer_name"`
	Date         string           `json:"date"`
	Amount       decimal.Decimal  `json:"amount"`
	Status       domain.PayStatus `json:"status"`
}

// ToReceivableResponse converts a domain.Receivable to a DTO.
func ToReceivableResponse(receivable *domain.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ReceivableID: receivable.ReceivableID,
		CustomerName: receivable.CustomerName,
		Date:         receivable.Date.Format(dateLayout),
		Amount:       receivable.Amount,
		Status:       receivable.Status,
	}
}

// ToReceivableResponseList converts a slice of domain receivables to DTOs.
func ToReceivableResponseList(receivables []domain.Receivable) []ReceivableResponse {
	res := make([]ReceivableResponse, len(receivables))
	for i, receivable := range receivables {
		res[i] = ToReceivableResponse(&receivable)
	}
	return res
}
