package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SalonID string `gorm:"type:varchar(36);index:idx_booking_salon_staff,priority:1;not null" json:"salon_id"`
	StaffID string `gorm:"type:varchar(36);index:idx_booking_salon_staff,priority:2;not null" json:"staff_id"`

	ServiceName string `gorm:"size:100" json:"service_name"`
	CustomerID  string `gorm:"type:varchar(36);index" json:"customer_id"`

	Start time.Time `gorm:"column:starts_at;not null;index" json:"start"`
	End   time.Time `gorm:"column:ends_at;not null" json:"end"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}
