package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type Repository interface {
	GetSalon(
		ctx context.Context,
		salonID string,
	) (*models.Salon, error)

	GetUser(
		ctx context.Context,
		salonID string,
		userID string,
	) (*models.User, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		salonID string,
		bookingID string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// staffID "" lists every staff member's bookings.
	ListBookings(
		ctx context.Context,
		salonID string,
		staffID string,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}
