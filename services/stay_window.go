package services

import (
	"errors"
	"time"
)

// ErrInvalidStayWindow is returned when a caller supplies a window whose
// start date falls after its end date. Callers validate before availability
// logic ever runs.
var ErrInvalidStayWindow = errors.New("stay window start is after end")

// StayWindow is one continuous occupancy as an inclusive range of calendar
// dates [Start, End]. Both bounds are normalized to midnight UTC so date
// comparisons never trip over time-of-day or timezone noise.
type StayWindow struct {
	Start time.Time
	End   time.Time
}

// NewStayWindow validates and normalizes a stay window.
func NewStayWindow(start, end time.Time) (StayWindow, error) {
	w := StayWindow{Start: DateOnly(start), End: DateOnly(end)}
	if w.Start.After(w.End) {
		return StayWindow{}, ErrInvalidStayWindow
	}
	return w, nil
}

// DateOnly strips the time component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ConflictsWith reports whether an existing stay window blocks the candidate
// window w. A conflict exists when any of these holds:
//
//  1. existing starts at/before the candidate start and extends strictly
//     past it,
//  2. existing starts strictly before the candidate end and extends to/past
//     it,
//  3. existing is fully contained within the candidate (inclusive).
//
// The strict comparisons in cases 1 and 2 are what make same-day turnover
// legal: an existing checkout date equal to the new check-in date (or the
// reverse) is never a conflict. Do not "simplify" this into a plain range
// intersection; the strict/non-strict mix is the contract.
func (w StayWindow) ConflictsWith(existing StayWindow) bool {
	eStart, eEnd := existing.Start, existing.End
	cStart, cEnd := w.Start, w.End

	// case 1: existing covers the candidate start
	if !eStart.After(cStart) && eEnd.After(cStart) {
		return true
	}
	// case 2: existing covers the candidate end
	if eStart.Before(cEnd) && !eEnd.Before(cEnd) {
		return true
	}
	// case 3: existing fully inside the candidate
	if !eStart.Before(cStart) && !eEnd.After(cEnd) {
		return true
	}
	return false
}
