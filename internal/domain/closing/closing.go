package closing

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/money"
)

const (
	ReasonBank = "bank"
	ReasonTips = "tips"
)

type Withdrawal struct {
	Reason string       `json:"reason"`
	Amount money.Amount `json:"amount"`
}

// Preview is the system side of a pending closing.
type Preview struct {
	SalonID        string       `json:"salon_id"`
	Since          time.Time    `json:"since"`
	Until          time.Time    `json:"until"`
	ExpectedAmount money.Amount `json:"expected_amount"`
	SaleCount      int          `json:"sale_count"`
}

// Count is what the operator enters when closing the register.
type Count struct {
	CashDeposit      money.Amount
	Withdrawals      []Withdrawal
	ActualCashOnHand *money.Amount
	Notes            string
}

// FilterWithdrawals drops entries whose amount is not positive, keeping order.
func FilterWithdrawals(in []Withdrawal) []Withdrawal {
	out := make([]Withdrawal, 0, len(in))
	for _, w := range in {
		if w.Amount.IsPositive() {
			out = append(out, w)
		}
	}
	return out
}

func (c Count) Validate() error {
	if c.ActualCashOnHand == nil || c.ActualCashOnHand.IsNegative() {
		return httperr.ErrValidation("invalid_actual_cash")
	}
	if c.CashDeposit.IsNegative() {
		return httperr.ErrValidation("invalid_cash_deposit")
	}
	return nil
}

// Build assembles the closing record from a fresh preview and the operator's
// count:
//
//	calculated = deposit + expected - sum(withdrawals)
//	difference = actual - calculated
func Build(p Preview, executedBy string, c Count) (*models.CashClosing, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	withdrawals := FilterWithdrawals(c.Withdrawals)

	cl := &models.CashClosing{
		SalonID:          p.SalonID,
		ExecutedBy:       executedBy,
		PeriodStart:      p.Since,
		ClosingDate:      p.Until,
		CashDeposit:      c.CashDeposit,
		CashSales:        p.ExpectedAmount,
		ActualCashOnHand: *c.ActualCashOnHand,
		Notes:            strings.TrimSpace(c.Notes),
	}

	total := money.Zero()
	for i, w := range withdrawals {
		total = total.Add(w.Amount)

		switch strings.ToLower(strings.TrimSpace(w.Reason)) {
		case ReasonBank:
			cl.BankWithdrawal = cl.BankWithdrawal.Add(w.Amount)
		case ReasonTips:
			cl.TipsWithdrawal = cl.TipsWithdrawal.Add(w.Amount)
		default:
			cl.OtherWithdrawal = cl.OtherWithdrawal.Add(w.Amount)
		}

		cl.Withdrawals = append(cl.Withdrawals, models.CashWithdrawal{
			Position: i,
			Reason:   strings.TrimSpace(w.Reason),
			Amount:   w.Amount,
		})
	}

	cl.CalculatedCashOnHand = c.CashDeposit.Add(p.ExpectedAmount).Sub(total)
	cl.Difference = cl.ActualCashOnHand.Sub(cl.CalculatedCashOnHand)

	return cl, nil
}
