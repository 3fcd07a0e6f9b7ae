package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// tenant holds the lookups every salon-scoped repository shares. A user is
// only ever found through the salon it belongs to.
type tenant struct {
	db *gorm.DB
}

func (r tenant) GetSalon(
	ctx context.Context,
	salonID string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("id = ?", salonID).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r tenant) GetUser(
	ctx context.Context,
	salonID string,
	userID string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", userID, salonID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
