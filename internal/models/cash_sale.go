package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/money"
)

const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentVoucher = "voucher"
)

// CashSale is an invoice. Rows are immutable; corrections are new entries.
type CashSale struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SalonID string `gorm:"type:varchar(36);index:idx_sale_salon_created,priority:1;not null" json:"salon_id"`
	StaffID string `gorm:"type:varchar(36);index;not null" json:"staff_id"`

	// nil for walk-in customers
	CustomerID *string `gorm:"type:varchar(36)" json:"customer_id"`

	PaymentMethod string       `gorm:"size:10;not null;index" json:"payment_method"`
	TotalAmount   money.Amount `gorm:"not null" json:"total_amount"`

	Items []CashSaleItem `gorm:"foreignKey:SaleID" json:"items"`

	CreatedAt time.Time `gorm:"index:idx_sale_salon_created,priority:2" json:"created_at"`
}

func (s *CashSale) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

type CashSaleItem struct {
	ID          string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	SaleID      string       `gorm:"type:varchar(36);index;not null" json:"-"`
	Description string       `gorm:"size:120;not null" json:"description"`
	Quantity    int          `gorm:"not null" json:"quantity"`
	UnitPrice   money.Amount `gorm:"not null" json:"unit_price"`
	LineTotal   money.Amount `gorm:"not null" json:"line_total"`
}

func (i *CashSaleItem) BeforeCreate(tx *gorm.DB) error {
	newID(&i.ID)
	return nil
}
