package availability

import (
	"iter"
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/domain/booking"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
)

// OpeningHours indexes a salon's opening table by weekday. Missing days are closed.
type OpeningHours map[time.Weekday]models.OpeningHours

func NewOpeningHours(rows []models.OpeningHours) OpeningHours {
	oh := make(OpeningHours, len(rows))
	for _, r := range rows {
		if r.Weekday < 0 || r.Weekday > 6 {
			continue
		}
		oh[time.Weekday(r.Weekday)] = r
	}
	return oh
}

// Window returns the opening interval of day (local midnight).
func (oh OpeningHours) Window(day time.Time) (Interval, bool) {
	row, ok := oh[day.Weekday()]
	if !ok || !row.IsOpen {
		return Interval{}, false
	}

	open, err := timezone.AtClock(day, row.Open)
	if err != nil {
		return Interval{}, false
	}
	closeAt, err := timezone.AtClock(day, row.Close)
	if err != nil {
		return Interval{}, false
	}

	w := Interval{Start: open, End: closeAt}
	return w, w.Valid()
}

// ScheduleInput is everything the engine needs for one staff member.
type ScheduleInput struct {
	Range    Interval
	Location *time.Location
	Hours    OpeningHours
	Blocks   []models.AvailabilityBlock
	Bookings []models.Booking
}

// FreeIntervals yields the bookable intervals of the range, computing one
// day at a time. The sequence is single-use: it is built from the loaded
// rows and does not re-read storage.
func FreeIntervals(in ScheduleInput) iter.Seq[Interval] {
	var work, busy []Interval
	for _, b := range in.Blocks {
		iv := Effective(b, in.Location)
		switch BlockType(b.Type) {
		case BlockWork:
			work = append(work, iv)
		case BlockBreak, BlockAbsence:
			busy = append(busy, iv)
		}
	}
	for _, bk := range in.Bookings {
		if booking.Status(bk.Status) == booking.StatusCancelled {
			continue
		}
		busy = append(busy, Interval{Start: bk.Start, End: bk.End})
	}
	work, busy = Merge(work), Merge(busy)

	return func(yield func(Interval) bool) {
		for day := timezone.StartOfDay(in.Range.Start, in.Location); day.Before(in.Range.End); day = timezone.NextDay(day) {
			for _, iv := range freeOnDay(day, in.Range, in.Hours, work, busy) {
				if !yield(iv) {
					return
				}
			}
		}
	}
}

func freeOnDay(day time.Time, rng Interval, hours OpeningHours, work, busy []Interval) []Interval {
	open, ok := hours.Window(day)
	if !ok {
		return nil
	}

	windows := []Interval{open}

	// Work blocks anywhere on the local day narrow it to the rostered hours,
	// whatever part of the day the caller asked for. Rostered hours that all
	// fall outside the opening window leave nothing bookable.
	whole := Interval{Start: day, End: timezone.NextDay(day)}
	if dayWork := overlapping(work, whole); len(dayWork) > 0 {
		windows = Intersect(windows, dayWork)
	}

	var clipped []Interval
	for _, w := range windows {
		if c, ok := w.Clip(rng); ok {
			clipped = append(clipped, c)
		}
	}
	if len(clipped) == 0 {
		return nil
	}

	return Subtract(clipped, overlapping(busy, open))
}

func overlapping(in []Interval, w Interval) []Interval {
	var out []Interval
	for _, iv := range in {
		if iv.Overlaps(w) {
			out = append(out, iv)
		}
	}
	return out
}
