package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/audit"
	domain "github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

// ======================================================
// RESCHEDULE
// ======================================================

type RescheduleBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	actor usecase.Actor,
	bookingID string,
	start time.Time,
	end time.Time,
) (*models.Booking, error) {

	b, err := loadBooking(ctx, uc.repo, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Reschedule(b, start, end); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// ======================================================
// STATUS
// ======================================================

type ChangeBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewChangeBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		audit: audit,
		now:   timezone.NowUTC,
	}
}

func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	actor usecase.Actor,
	bookingID string,
	status string,
) (*models.Booking, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	// customers may only cancel
	if !actor.IsStaff() && to != domain.StatusCancelled {
		return nil, httperr.ErrForbidden("forbidden")
	}

	b, err := loadBooking(ctx, uc.repo, actor, bookingID)
	if err != nil {
		return nil, err
	}

	from := b.Status
	if err := domain.Transition(b, to, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  actor.SalonID,
		UserID:   &actor.UserID,
		Action:   "booking_" + b.Status,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   b.Status,
		},
	})

	return b, nil
}
