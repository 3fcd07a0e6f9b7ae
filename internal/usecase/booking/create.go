package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	"github.com/BruksfildServices01/salon-pos/internal/config"
	domain "github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	StaffID     string
	ServiceName string
	CustomerID  string
	Start       time.Time
	End         time.Time
	Notes       string
}

type CreateBookingOutput struct {
	Booking *models.Booking `json:"booking"`
	// Overlaps lists confirmed or paid bookings of the same staff member
	// sharing time with the new one. They are a warning only.
	Overlaps []string `json:"overlaps"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   timezone.NowUTC,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor usecase.Actor,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	// --------------------------------------------------
	// Salon and staff member
	// --------------------------------------------------
	salon, err := loadSalon(ctx, uc.repo, actor.SalonID)
	if err != nil {
		return nil, err
	}
	settings := config.SettingsFor(salon)

	if _, err := usecase.FindStaff(ctx, uc.repo, actor.SalonID, in.StaffID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Time range
	// --------------------------------------------------
	if !in.Start.Before(in.End) {
		return nil, httperr.ErrValidation("invalid_booking_range")
	}

	customerID := strings.TrimSpace(in.CustomerID)
	if actor.IsStaff() && customerID != "" {
		if _, err := usecase.FindCustomer(ctx, uc.repo, actor.SalonID, customerID); err != nil {
			return nil, err
		}
	}
	if !actor.IsStaff() {
		// customers always book for themselves, with the salon's notice
		customerID = actor.UserID

		earliest := uc.now().Add(time.Duration(settings.MinAdvanceMinutes) * time.Minute)
		if in.Start.Before(earliest) {
			return nil, httperr.ErrValidation("too_soon")
		}
	}

	b := &models.Booking{
		SalonID:     actor.SalonID,
		StaffID:     in.StaffID,
		ServiceName: strings.TrimSpace(in.ServiceName),
		CustomerID:  customerID,
		Start:       in.Start.UTC(),
		End:         in.End.UTC(),
		Status:      string(domain.InitialStatus(actor.Role)),
		Notes:       strings.TrimSpace(in.Notes),
	}

	// --------------------------------------------------
	// Overlap warning
	// --------------------------------------------------
	existing, err := uc.repo.ListBookings(ctx, actor.SalonID, in.StaffID, b.Start, b.End)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	overlaps := make([]string, 0)
	for _, other := range existing {
		if domain.Blocking(domain.Status(other.Status)) &&
			other.Start.Before(b.End) && other.End.After(b.Start) {
			overlaps = append(overlaps, other.ID)
		}
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"staff_id": b.StaffID,
			"status":   b.Status,
			"overlaps": len(overlaps),
		},
	})

	return &CreateBookingOutput{Booking: b, Overlaps: overlaps}, nil
}

// ======================================================
// HELPERS
// ======================================================

func loadSalon(
	ctx context.Context,
	repo domain.Repository,
	salonID string,
) (*models.Salon, error) {

	salon, err := repo.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("salon_not_found")
		}
		return nil, fmt.Errorf("load salon: %w", err)
	}
	return salon, nil
}

// loadBooking returns a booking of the caller's salon. Customers only see
// their own bookings.
func loadBooking(
	ctx context.Context,
	repo domain.Repository,
	actor usecase.Actor,
	bookingID string,
) (*models.Booking, error) {

	b, err := repo.GetBooking(ctx, actor.SalonID, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("booking_not_found")
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if b.SalonID != actor.SalonID {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	if !actor.IsStaff() && b.CustomerID != actor.UserID {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	return b, nil
}
