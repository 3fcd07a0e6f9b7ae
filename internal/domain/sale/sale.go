package sale

import (
	"strings"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/money"
)

type Item struct {
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	UnitPrice   money.Amount `json:"unit_price"`
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case models.PaymentCash, models.PaymentCard, models.PaymentVoucher:
		return true
	}
	return false
}

// Build prices the items and returns an unsaved sale. The total is always
// the sum of the line totals; clients never send it.
func Build(
	salonID string,
	staffID string,
	customerID *string,
	paymentMethod string,
	items []Item,
) (*models.CashSale, error) {

	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	if !ValidPaymentMethod(method) {
		return nil, httperr.ErrValidation("invalid_payment_method")
	}
	if len(items) == 0 {
		return nil, httperr.ErrValidation("invalid_items")
	}

	s := &models.CashSale{
		SalonID:       salonID,
		StaffID:       staffID,
		PaymentMethod: method,
		TotalAmount:   money.Zero(),
	}
	if customerID != nil && strings.TrimSpace(*customerID) != "" {
		id := strings.TrimSpace(*customerID)
		s.CustomerID = &id
	}

	for _, it := range items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" || it.Quantity < 1 || it.UnitPrice.IsNegative() {
			return nil, httperr.ErrValidation("invalid_items")
		}

		line := it.UnitPrice.MulInt(it.Quantity)
		s.Items = append(s.Items, models.CashSaleItem{
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   line,
		})
		s.TotalAmount = s.TotalAmount.Add(line)
	}

	return s, nil
}
