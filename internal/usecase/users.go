package usecase

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// UserGetter is the salon-scoped user lookup every domain repository offers.
type UserGetter interface {
	GetUser(
		ctx context.Context,
		salonID string,
		userID string,
	) (*models.User, error)
}

// FindStaff resolves staffID inside the salon. Users of another salon and
// non-staff users are reported exactly like missing ones.
func FindStaff(
	ctx context.Context,
	repo UserGetter,
	salonID string,
	staffID string,
) (*models.User, error) {

	u, err := repo.GetUser(ctx, salonID, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("staff_not_found")
		}
		return nil, fmt.Errorf("load staff: %w", err)
	}
	if u.SalonID != salonID || !u.IsStaff() {
		return nil, httperr.ErrNotFound("staff_not_found")
	}
	return u, nil
}

// FindCustomer resolves a customer id supplied by the caller. Any member of
// the salon qualifies; ids of another salon are reported as missing.
func FindCustomer(
	ctx context.Context,
	repo UserGetter,
	salonID string,
	customerID string,
) (*models.User, error) {

	u, err := repo.GetUser(ctx, salonID, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("customer_not_found")
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if u.SalonID != salonID {
		return nil, httperr.ErrNotFound("customer_not_found")
	}
	return u, nil
}

// RequireStaff checks the caller against storage rather than trusting the
// role claim alone.
func RequireStaff(
	ctx context.Context,
	repo UserGetter,
	actor Actor,
) error {

	if !actor.IsStaff() {
		return httperr.ErrForbidden("forbidden")
	}

	u, err := repo.GetUser(ctx, actor.SalonID, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrForbidden("forbidden")
		}
		return fmt.Errorf("load user: %w", err)
	}
	if u.SalonID != actor.SalonID || !u.IsStaff() {
		return httperr.ErrForbidden("forbidden")
	}
	return nil
}
