package availability

import (
	"time"

	"github.com/BruksfildServices01/salon-pos/internal/httperr"
	"github.com/BruksfildServices01/salon-pos/internal/models"
	"github.com/BruksfildServices01/salon-pos/internal/timezone"
)

// ===============================
// Block Types
// ===============================

type BlockType string

const (
	BlockWork    BlockType = "work"
	BlockBreak   BlockType = "break"
	BlockAbsence BlockType = "absence"
)

func ParseBlockType(s string) (BlockType, error) {
	switch t := BlockType(s); t {
	case BlockWork, BlockBreak, BlockAbsence:
		return t, nil
	}
	return "", httperr.ErrValidation("invalid_block_type")
}

// ===============================
// Normalization
// ===============================

// AbsenceWindow widens an absence to whole days in loc. The returned End is
// the exclusive midnight after the last absent day.
func AbsenceWindow(start, end time.Time, loc *time.Location) Interval {
	first := timezone.StartOfDay(start, loc)
	last := timezone.StartOfDay(end, loc)
	if last.Before(first) {
		last = first
	}
	return Interval{Start: first, End: timezone.NextDay(last)}
}

// DisplayEnd renders an exclusive day boundary as the last millisecond of
// the day, the form clients show for absences.
func DisplayEnd(exclusive time.Time) time.Time {
	return exclusive.Add(-time.Millisecond)
}

// PrepareBlock validates a block before it is persisted. Absences are
// stored with day granularity; work and break blocks keep their times.
func PrepareBlock(b *models.AvailabilityBlock, loc *time.Location) error {
	t, err := ParseBlockType(b.Type)
	if err != nil {
		return err
	}

	if t == BlockAbsence {
		if timezone.StartOfDay(b.End, loc).Before(timezone.StartOfDay(b.Start, loc)) {
			return httperr.ErrValidation("invalid_block_range")
		}
		w := AbsenceWindow(b.Start, b.End, loc)
		b.Start = w.Start.UTC()
		b.End = DisplayEnd(w.End).UTC()
		return nil
	}

	if !b.Start.Before(b.End) {
		return httperr.ErrValidation("invalid_block_range")
	}
	b.Start = b.Start.UTC()
	b.End = b.End.UTC()
	return nil
}

// Effective returns the interval a stored block occupies on the calendar.
func Effective(b models.AvailabilityBlock, loc *time.Location) Interval {
	if BlockType(b.Type) == BlockAbsence {
		return AbsenceWindow(b.Start, b.End, loc)
	}
	return Interval{Start: b.Start, End: b.End}
}
