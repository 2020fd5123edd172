// Package span computes elapsed-day progress over inclusive date ranges.
// Every call site that needs "how far through" a tracked range we are goes
// through Compute, so the home view, list view, detail view and widget all
// agree on the same arithmetic.
package span

import (
	"errors"
	"math"
	"time"

	"fillit/internal/domain/calendar"
)

// Domain errors
var (
	ErrStartAfterEnd = errors.New("start date must be on or before end date")
)

// Span is a concrete date interval with an as-of progress marker.
// INVARIANT: 0 <= ElapsedDays <= TotalDays.
type Span struct {
	Start       time.Time
	End         time.Time
	AsOf        time.Time
	TotalDays   int
	ElapsedDays int
}

// Compute derives a Span from an inclusive [start, end] range and an as-of
// date. Before the range elapsed is 0; past the range elapsed equals total.
// PRE: start <= end (calendar-day order)
// POST: TotalDays >= 1 and ElapsedDays in [0, TotalDays], or ErrStartAfterEnd
func Compute(start, end, asOf time.Time) (Span, error) {
	if calendar.SignedDays(start, end) < 0 {
		return Span{}, ErrStartAfterEnd
	}

	total := calendar.InclusiveDays(start, end)

	var elapsed int
	switch {
	case calendar.SignedDays(start, asOf) < 0:
		elapsed = 0
	case calendar.SignedDays(end, asOf) > 0:
		elapsed = total
	default:
		elapsed = calendar.InclusiveDays(start, asOf)
	}

	return Span{
		Start:       start,
		End:         end,
		AsOf:        asOf,
		TotalDays:   total,
		ElapsedDays: clamp(elapsed, 0, total),
	}, nil
}

// ComputeYear derives the span for a full calendar year, the default
// tracking mode.
// PRE: year is a valid Gregorian year
// POST: TotalDays is 365 or 366 per the leap rule
func ComputeYear(year int, asOf time.Time) Span {
	start := time.Date(year, 1, 1, 12, 0, 0, 0, asOf.Location())
	end := time.Date(year, 12, 31, 12, 0, 0, 0, asOf.Location())
	sp, _ := Compute(start, end, asOf) // Jan 1 <= Dec 31 always holds
	return sp
}

// PercentComplete returns the rounded completion percentage in [0, 100].
// Degenerate zero-length spans report 0 rather than dividing by zero.
func (s Span) PercentComplete() int {
	if s.TotalDays <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(s.ElapsedDays) / float64(s.TotalDays)))
	return clamp(pct, 0, 100)
}

// Done reports whether the as-of date has reached or passed the end date.
func (s Span) Done() bool {
	return s.TotalDays > 0 && s.ElapsedDays == s.TotalDays
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
