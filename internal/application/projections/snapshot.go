// Package projections holds the read-side queries. Every screen and the
// home-screen widget derive their numbers through these functions, so a
// given goal and as-of date render identically everywhere.
package projections

import (
	"strconv"
	"time"

	"fillit/internal/domain/goal"
	"fillit/internal/domain/span"
)

// Snapshot is the renderer-agnostic result bundle for one tracked range:
// a title plus the span's dates and day counts. Presentation collaborators
// consume nothing else.
type Snapshot struct {
	Title string
	span.Span
}

// ProjectYearSnapshot derives the snapshot for the current calendar year,
// the default tracking mode.
// PRE: asOf is a valid date
// POST: TotalDays is 365 or 366 and ElapsedDays advances by one per day
func ProjectYearSnapshot(asOf time.Time) Snapshot {
	year := asOf.Year()
	return Snapshot{
		Title: strconv.Itoa(year),
		Span:  span.ComputeYear(year, asOf),
	}
}

// ProjectGoalSnapshot derives the snapshot for a saved goal. Goals whose
// date information did not survive migration yield a zero-length span so
// callers always have something to render.
// PRE: asOf is a valid date
// POST: 0 <= ElapsedDays <= TotalDays
func ProjectGoalSnapshot(g goal.Goal, asOf time.Time) Snapshot {
	snap := Snapshot{Title: g.Title}
	if g.BaseDate.IsZero() || g.TargetDate.IsZero() {
		return snap
	}
	sp, err := span.Compute(g.BaseDate, g.TargetDate, asOf)
	if err != nil {
		// Inverted ranges are rejected before persistence; a record that
		// still arrives here renders as a zero-length span.
		return snap
	}
	snap.Span = sp
	return snap
}
