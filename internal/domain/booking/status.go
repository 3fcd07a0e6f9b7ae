package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled},
}

func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrValidation("invalid_state")
}

// InitialStatus is confirmed when the salon itself books, pending when a
// customer does.
func InitialStatus(actorRole string) Status {
	if actorRole == models.RoleStaff || actorRole == models.RoleAdmin {
		return StatusConfirmed
	}
	return StatusPending
}

// CanReschedule reports whether the booking still accepts a new time.
func CanReschedule(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrValidation("invalid_state")
	}
	return nil
}

// Blocking reports whether a booking of this status occupies staff time
// for overlap warnings.
func Blocking(s Status) bool {
	return s == StatusConfirmed || s == StatusPaid
}

// ===============================
// Domain Actions
// ===============================

func Transition(b *models.Booking, to Status, now time.Time) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)
	if to == StatusCancelled {
		b.CancelledAt = &now
	}
	return nil
}

func Reschedule(b *models.Booking, start, end time.Time) error {
	if err := CanReschedule(Status(b.Status)); err != nil {
		return err
	}
	if !start.Before(end) {
		return httperr.ErrValidation("invalid_booking_range")
	}

	b.Start = start.UTC()
	b.End = end.UTC()
	return nil
}
