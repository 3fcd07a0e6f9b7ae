package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

type Repository interface {
	// -------- Salon / staff --------
	GetSalon(
		ctx context.Context,
		salonID string,
	) (*models.Salon, error)

	GetUser(
		ctx context.Context,
		salonID string,
		userID string,
	) (*models.User, error)

	ListStaff(
		ctx context.Context,
		salonID string,
	) ([]models.User, error)

	ListOpeningHours(
		ctx context.Context,
		salonID string,
	) ([]models.OpeningHours, error)

	// -------- Blocks --------
	// staffID "" lists the blocks of every staff member.
	ListBlocks(
		ctx context.Context,
		salonID string,
		staffID string,
		from time.Time,
		to time.Time,
	) ([]models.AvailabilityBlock, error)

	GetBlock(
		ctx context.Context,
		salonID string,
		blockID string,
	) (*models.AvailabilityBlock, error)

	CreateBlock(
		ctx context.Context,
		b *models.AvailabilityBlock,
	) error

	// UpdateBlock writes b and bumps its version. With expectedVersion > 0
	// the write only happens when the stored version matches; ok reports
	// whether a row was written.
	UpdateBlock(
		ctx context.Context,
		b *models.AvailabilityBlock,
		expectedVersion int,
	) (bool, error)

	DeleteBlock(
		ctx context.Context,
		salonID string,
		blockID string,
	) (bool, error)

	// -------- Bookings --------
	// Cancelled bookings are excluded.
	ListActiveBookings(
		ctx context.Context,
		salonID string,
		staffID string,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}
