package availability

import (
	"slices"
	"time"
)

type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Clip returns the part of i inside bounds; ok is false when nothing is left.
func (i Interval) Clip(bounds Interval) (Interval, bool) {
	out := i
	if out.Start.Before(bounds.Start) {
		out.Start = bounds.Start
	}
	if out.End.After(bounds.End) {
		out.End = bounds.End
	}
	return out, out.Valid()
}

// Merge sorts intervals and joins the ones that overlap or touch.
func Merge(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}

	sorted := slices.Clone(in)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})

	out := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &out[len(out)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		out = append(out, cur)
	}
	return out
}

// Subtract removes every busy interval from base. Both inputs may be
// unsorted; the result is sorted and non-overlapping.
func Subtract(base, busy []Interval) []Interval {
	busy = Merge(busy)

	var out []Interval
	for _, b := range Merge(base) {
		cur := b.Start
		for _, x := range busy {
			if !x.End.After(cur) || !x.Start.Before(b.End) {
				continue
			}
			if x.Start.After(cur) {
				out = append(out, Interval{Start: cur, End: x.Start})
			}
			cur = x.End
			if !cur.Before(b.End) {
				break
			}
		}
		if cur.Before(b.End) {
			out = append(out, Interval{Start: cur, End: b.End})
		}
	}
	return out
}

// Intersect keeps the parts of a that are covered by b.
func Intersect(a, b []Interval) []Interval {
	a, b = Merge(a), Merge(b)

	var out []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if c, ok := a[i].Clip(b[j]); ok {
			out = append(out, c)
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}
