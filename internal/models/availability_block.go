package models

import (
	"time"

	"gorm.io/gorm"
)

type AvailabilityBlock struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SalonID string `gorm:"type:varchar(36);index:idx_block_salon_staff,priority:1;not null" json:"salon_id"`
	StaffID string `gorm:"type:varchar(36);index:idx_block_salon_staff,priority:2;not null" json:"staff_id"`

	Type  string    `gorm:"size:10;not null" json:"type"`
	Start time.Time `gorm:"column:starts_at;not null;index" json:"start"`
	End   time.Time `gorm:"column:ends_at;not null" json:"end"`
	Note  string    `gorm:"size:255" json:"note,omitempty"`

	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *AvailabilityBlock) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}
