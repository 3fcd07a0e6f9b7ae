package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/dto"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase/availability"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the unauthenticated, slug-addressed salon pages.
type PublicHandler struct {
	db       *gorm.DB
	schedule *availability.GetEffectiveSchedule
}

func NewPublicHandler(
	db *gorm.DB,
	schedule *availability.GetEffectiveSchedule,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		schedule: schedule,
	}
}

type publicStaff struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

////////////////////////////////////////////////////////
// SALON
////////////////////////////////////////////////////////

func (h *PublicHandler) Salon(c *gin.Context) {
	salon, ok := h.bySlug(c)
	if !ok {
		return
	}

	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("salon_id = ? AND role IN ?", salon.ID, []string{models.RoleStaff, models.RoleAdmin}).
		Order("name ASC").
		Find(&users).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	staff := make([]publicStaff, 0, len(users))
	for _, u := range users {
		staff = append(staff, publicStaff{ID: u.ID, Name: u.Name})
	}

	c.JSON(http.StatusOK, gin.H{
		"salon": dto.Salon(salon),
		"staff": staff,
	})
}

////////////////////////////////////////////////////////
// SCHEDULE
////////////////////////////////////////////////////////

func (h *PublicHandler) Schedule(c *gin.Context) {
	salon, ok := h.bySlug(c)
	if !ok {
		return
	}

	from, to, ok := requireRange(c)
	if !ok {
		httperr.BadRequest(c, "invalid_range", "from and to must be RFC 3339 timestamps.")
		return
	}

	out, err := h.schedule.Execute(c.Request.Context(), availability.GetScheduleInput{
		SalonID: salon.ID,
		StaffID: c.Query("staff_id"),
		From:    from,
		To:      to,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) bySlug(c *gin.Context) (*models.Salon, bool) {
	var salon models.Salon
	if err := h.db.WithContext(c.Request.Context()).
		Where("slug = ?", strings.ToLower(c.Param("slug"))).
		First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = httperr.ErrNotFound("salon_not_found")
		}
		httperr.Respond(c, err)
		return nil, false
	}
	return &salon, true
}
