package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/money"
)

// ClosingListDTO is the row shape of closing listings; withdrawals are only
// returned by the detail endpoint.
type ClosingListDTO struct {
	ID                   string       `json:"id"`
	PeriodStart          time.Time    `json:"period_start"`
	ClosingDate          time.Time    `json:"closing_date"`
	ExecutedBy           string       `json:"executed_by"`
	CashSales            money.Amount `json:"cash_sales"`
	CalculatedCashOnHand money.Amount `json:"calculated_cash_on_hand"`
	ActualCashOnHand     money.Amount `json:"actual_cash_on_hand"`
	Difference           money.Amount `json:"difference"`
	HasAdminNote         bool         `json:"has_admin_note"`
}

func ClosingList(rows []models.CashClosing) []ClosingListDTO {
	out := make([]ClosingListDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, ClosingListDTO{
			ID:                   c.ID,
			PeriodStart:          c.PeriodStart,
			ClosingDate:          c.ClosingDate,
			ExecutedBy:           c.ExecutedBy,
			CashSales:            c.CashSales,
			CalculatedCashOnHand: c.CalculatedCashOnHand,
			ActualCashOnHand:     c.ActualCashOnHand,
			Difference:           c.Difference,
			HasAdminNote:         c.AdminNote != "",
		})
	}
	return out
}
