package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/money"
)

type CashClosing struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SalonID    string `gorm:"type:varchar(36);index:idx_closing_salon_date,priority:1;not null" json:"salon_id"`
	ExecutedBy string `gorm:"type:varchar(36);not null" json:"executed_by"`

	PeriodStart time.Time `gorm:"not null" json:"period_start"`
	ClosingDate time.Time `gorm:"not null;index:idx_closing_salon_date,priority:2" json:"closing_date"`

	CashDeposit money.Amount `gorm:"not null" json:"cash_deposit"`
	CashSales   money.Amount `gorm:"not null" json:"cash_sales"`

	Withdrawals     []CashWithdrawal `gorm:"foreignKey:ClosingID" json:"withdrawals"`
	BankWithdrawal  money.Amount     `json:"bank_withdrawal"`
	TipsWithdrawal  money.Amount     `json:"tips_withdrawal"`
	OtherWithdrawal money.Amount     `json:"other_withdrawal"`

	CalculatedCashOnHand money.Amount `gorm:"not null" json:"calculated_cash_on_hand"`
	ActualCashOnHand     money.Amount `gorm:"not null" json:"actual_cash_on_hand"`
	Difference           money.Amount `gorm:"not null" json:"difference"`

	Notes     string `gorm:"type:text" json:"notes,omitempty"`
	AdminNote string `gorm:"type:text" json:"admin_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *CashClosing) BeforeCreate(tx *gorm.DB) error {
	newID(&c.ID)
	return nil
}

type CashWithdrawal struct {
	ID        string       `gorm:"type:varchar(36);primaryKey" json:"-"`
	ClosingID string       `gorm:"type:varchar(36);index;not null" json:"-"`
	Position  int          `gorm:"not null" json:"-"`
	Reason    string       `gorm:"size:100" json:"reason"`
	Amount    money.Amount `gorm:"not null" json:"amount"`
}

func (w *CashWithdrawal) BeforeCreate(tx *gorm.DB) error {
	newID(&w.ID)
	return nil
}
