package availability

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/salon-pos/internal/domain/availability"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
)

type StaffDay struct {
	StaffID  string                     `json:"staff_id"`
	Name     string                     `json:"name"`
	Blocks   []models.AvailabilityBlock `json:"blocks"`
	Bookings []models.Booking           `json:"bookings"`
}

type DayView struct {
	Date  string     `json:"date"`
	Staff []StaffDay `json:"staff"`
	// Skipped counts rows whose staff member is no longer a staff user of
	// the salon.
	Skipped int `json:"skipped"`
}

type ListDayView struct {
	repo domain.Repository
}

func NewListDayView(repo domain.Repository) *ListDayView {
	return &ListDayView{repo: repo}
}

// Execute groups the blocks and bookings of date ("2006-01-02", salon
// time) by staff member.
func (uc *ListDayView) Execute(
	ctx context.Context,
	salonID string,
	date string,
) (*DayView, error) {

	loc, err := salonLocation(ctx, uc.repo, salonID)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_range")
	}
	from, to := day, timezone.NextDay(day)

	staff, err := uc.repo.ListStaff(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	blocks, err := uc.repo.ListBlocks(ctx, salonID, "", from, to)
	if err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}
	bookings, err := uc.repo.ListActiveBookings(ctx, salonID, "", from, to)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	view := &DayView{Date: date, Staff: make([]StaffDay, 0, len(staff))}
	index := make(map[string]int, len(staff))
	for _, u := range staff {
		if !u.IsStaff() {
			continue
		}
		index[u.ID] = len(view.Staff)
		view.Staff = append(view.Staff, StaffDay{
			StaffID:  u.ID,
			Name:     u.Name,
			Blocks:   []models.AvailabilityBlock{},
			Bookings: []models.Booking{},
		})
	}

	for _, b := range blocks {
		i, ok := index[b.StaffID]
		if !ok {
			view.Skipped++
			continue
		}
		view.Staff[i].Blocks = append(view.Staff[i].Blocks, b)
	}
	for _, bk := range bookings {
		i, ok := index[bk.StaffID]
		if !ok {
			view.Skipped++
			continue
		}
		view.Staff[i].Bookings = append(view.Staff[i].Bookings, bk)
	}

	return view, nil
}
