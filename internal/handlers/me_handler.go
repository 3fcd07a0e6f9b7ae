package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/dto"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/middleware"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.Actor(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Salon").
		Where("id = ? AND salon_id = ?", actor.UserID, actor.SalonID).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "user_not_found", "The token refers to an unknown user.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.User(&user),
		"salon": dto.Salon(&user.Salon),
	})
}
