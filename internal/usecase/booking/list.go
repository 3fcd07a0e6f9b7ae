package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	actor usecase.Actor,
	staffID string,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	if !from.Before(to) {
		return nil, httperr.ErrValidation("invalid_range")
	}

	rows, err := uc.repo.ListBookings(ctx, actor.SalonID, staffID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	if actor.IsStaff() {
		return rows, nil
	}

	own := make([]models.Booking, 0, len(rows))
	for _, b := range rows {
		if b.CustomerID == actor.UserID {
			own = append(own, b)
		}
	}
	return own, nil
}
