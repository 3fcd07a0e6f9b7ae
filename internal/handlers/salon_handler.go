package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/dto"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
	"github.com/BruksfildServices01/salon-pos/internal/validators"
)

// SalonHandler serves the salon profile and its weekly opening table.
type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

type OpeningDay struct {
	Weekday int    `json:"weekday"`
	IsOpen  bool   `json:"is_open"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

type OpeningHoursRequest struct {
	Days []OpeningDay `json:"days" binding:"required"`
}

func (h *SalonHandler) Get(c *gin.Context) {
	salon, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.Salon(salon))
}

func (h *SalonHandler) Update(c *gin.Context) {
	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	salon, ok := h.load(c)
	if !ok {
		return
	}

	if req.Name != nil {
		salon.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.Respond(c, httperr.ErrValidation("invalid_timezone"))
			return
		}
		salon.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.Respond(c, httperr.ErrValidation("invalid_request"))
			return
		}
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.WithContext(c.Request.Context()).Save(salon).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Salon(salon))
}

func (h *SalonHandler) GetOpeningHours(c *gin.Context) {
	salonID := middleware.Actor(c).SalonID

	var hours []models.OpeningHours
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, hours)
}

// PutOpeningHours replaces the whole weekly table. Weekdays left out are
// closed.
func (h *SalonHandler) PutOpeningHours(c *gin.Context) {
	salonID := middleware.Actor(c).SalonID

	var req OpeningHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	seen := make(map[int]bool, len(req.Days))
	rows := make([]models.OpeningHours, 0, len(req.Days))
	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 || seen[d.Weekday] {
			httperr.Respond(c, httperr.ErrValidation("invalid_opening_hours"))
			return
		}
		seen[d.Weekday] = true

		if d.IsOpen && !validators.IsOpeningSpan(d.Open, d.Close) {
			httperr.Respond(c, httperr.ErrValidation("invalid_opening_hours"))
			return
		}

		rows = append(rows, models.OpeningHours{
			SalonID: salonID,
			Weekday: d.Weekday,
			IsOpen:  d.IsOpen,
			Open:    d.Open,
			Close:   d.Close,
		})
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salonID).Delete(&models.OpeningHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *SalonHandler) load(c *gin.Context) (*models.Salon, bool) {
	var salon models.Salon
	if err := h.db.WithContext(c.Request.Context()).
		First(&salon, "id = ?", middleware.Actor(c).SalonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = httperr.ErrNotFound("salon_not_found")
		}
		httperr.Respond(c, err)
		return nil, false
	}
	return &salon, true
}
