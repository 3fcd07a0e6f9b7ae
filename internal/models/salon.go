package models

import (
	"time"

	"gorm.io/gorm"
)

type Salon struct {
	ID                string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Slug              string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone             string    `gorm:"size:20" json:"phone"`
	Address           string    `gorm:"size:255" json:"address"`
	Timezone          string    `gorm:"size:64;default:'UTC'" json:"timezone"`
	MinAdvanceMinutes int       `gorm:"default:0" json:"min_advance_minutes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

// OpeningHours is one weekday row of a salon's opening table.
type OpeningHours struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	SalonID string `gorm:"type:varchar(36);uniqueIndex:idx_opening_salon_weekday,priority:1;not null" json:"salon_id"`
	Weekday int    `gorm:"uniqueIndex:idx_opening_salon_weekday,priority:2" json:"weekday"`
	IsOpen  bool   `json:"is_open"`
	Open    string `gorm:"size:5" json:"open"`
	Close   string `gorm:"size:5" json:"close"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
