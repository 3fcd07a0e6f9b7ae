package config

import (
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
)

// SalonSettings is the per-request view of a salon's configuration. It is
// built from the stored salon on every call and handed down explicitly.
type SalonSettings struct {
	SalonID           string
	Location          *time.Location
	MinAdvanceMinutes int
	CreatedAt         time.Time
}

func SettingsFor(salon *models.Salon) SalonSettings {
	minAdvance := salon.MinAdvanceMinutes
	if minAdvance < 0 {
		minAdvance = 0
	}

	return SalonSettings{
		SalonID:           salon.ID,
		Location:          timezone.Location(salon.Timezone),
		MinAdvanceMinutes: minAdvance,
		CreatedAt:         salon.CreatedAt,
	}
}
