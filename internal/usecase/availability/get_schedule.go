package availability

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/availability"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/metrics"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/usecase"
)

const DefaultMaxDays = 62

// ======================================================
// INPUT / OUTPUT
// ======================================================

type GetScheduleInput struct {
	SalonID string
	// StaffID "" computes the schedule of every staff member.
	StaffID string
	From    time.Time
	To      time.Time
}

type StaffSchedule struct {
	StaffID   string            `json:"staff_id"`
	Name      string            `json:"name"`
	Intervals []domain.Interval `json:"intervals"`
}

type ScheduleOutput struct {
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Staff []StaffSchedule `json:"staff"`
}

// ======================================================
// USE CASE
// ======================================================

type GetEffectiveSchedule struct {
	repo    domain.Repository
	maxDays int
}

func NewGetEffectiveSchedule(
	repo domain.Repository,
	maxDays int,
) *GetEffectiveSchedule {
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}
	return &GetEffectiveSchedule{
		repo:    repo,
		maxDays: maxDays,
	}
}

func (uc *GetEffectiveSchedule) Execute(
	ctx context.Context,
	in GetScheduleInput,
) (*ScheduleOutput, error) {
	defer metrics.ObserveSchedule(time.Now())

	if !in.From.Before(in.To) {
		return nil, httperr.ErrValidation("invalid_range")
	}
	if in.To.Sub(in.From) > time.Duration(uc.maxDays)*24*time.Hour {
		return nil, httperr.ErrValidation("range_too_large")
	}

	loc, err := salonLocation(ctx, uc.repo, in.SalonID)
	if err != nil {
		return nil, err
	}

	staff, err := uc.resolveStaff(ctx, in.SalonID, in.StaffID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListOpeningHours(ctx, in.SalonID)
	if err != nil {
		return nil, fmt.Errorf("load opening hours: %w", err)
	}
	hours := domain.NewOpeningHours(rows)

	// Absences are stored with day granularity, so widen the query to
	// whole days to catch the ones touching the range edges.
	rng := domain.Interval{Start: in.From.UTC(), End: in.To.UTC()}
	query := domain.AbsenceWindow(rng.Start, rng.End, loc)

	out := &ScheduleOutput{From: rng.Start, To: rng.End}
	for _, member := range staff {
		blocks, err := uc.repo.ListBlocks(ctx, in.SalonID, member.ID, query.Start, query.End)
		if err != nil {
			return nil, fmt.Errorf("load blocks: %w", err)
		}
		bookings, err := uc.repo.ListActiveBookings(ctx, in.SalonID, member.ID, rng.Start, rng.End)
		if err != nil {
			return nil, fmt.Errorf("load bookings: %w", err)
		}

		free := domain.FreeIntervals(domain.ScheduleInput{
			Range:    rng,
			Location: loc,
			Hours:    hours,
			Blocks:   blocks,
			Bookings: bookings,
		})

		intervals := make([]domain.Interval, 0)
		for iv := range free {
			intervals = append(intervals, domain.Interval{Start: iv.Start.UTC(), End: iv.End.UTC()})
		}

		out.Staff = append(out.Staff, StaffSchedule{
			StaffID:   member.ID,
			Name:      member.Name,
			Intervals: intervals,
		})
	}

	return out, nil
}

func (uc *GetEffectiveSchedule) resolveStaff(
	ctx context.Context,
	salonID string,
	staffID string,
) ([]models.User, error) {

	if staffID == "" {
		staff, err := uc.repo.ListStaff(ctx, salonID)
		if err != nil {
			return nil, fmt.Errorf("list staff: %w", err)
		}
		return staff, nil
	}

	member, err := usecase.FindStaff(ctx, uc.repo, salonID, staffID)
	if err != nil {
		return nil, err
	}
	return []models.User{*member}, nil
}
