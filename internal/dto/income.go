package dto

import (
	"time"

	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for all dates (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// CreateIncomeRequest defines the data needed to record an income entry.
type CreateIncomeRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ToDomain converts the request into a domain entry. The date has already
// been validated by the binding layer.
func (r CreateIncomeRequest) ToDomain() domain.Income {
	date, _ := time.Parse(dateLayout, r.Date)
	return domain.Income{
		Date:        date,
		Description: r.Description,
		Amount:      r.Amount,
	}
}

// IncomeResponse defines the data returned for an income entry. Field names
// mirror the income table columns.
type IncomeResponse struct {
	IncomeID    int64           `json:"income_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToIncomeResponse converts a domain.Income to an IncomeResponse DTO.
func ToIncomeResponse(entry *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:    entry.IncomeID,
		Date:        entry.Date.Format(dateLayout),
		Description: entry.Description,
		Amount:      entry.Amount,
	}
}

// ToIncomeResponseList converts a slice of domain entries to DTOs.
func ToIncomeResponseList(entries []domain.Income) []IncomeResponse {
	res := make([]IncomeResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToIncomeResponse(&entry)
	}
	return res
}
