// Package grid lays out a span as a row-major matrix of day cells. The
// layout carries rendering hints only; cell sizing and colors belong to
// the presentation layer.
package grid

import (
	"time"

	"fillit/internal/domain/calendar"
	"fillit/internal/domain/span"
)

// CellState classifies a single day cell for rendering.
type CellState int

// Cell states, in increasing display precedence.
const (
	StateEmpty CellState = iota
	StateFilled
	StateToday
	StateHighlight
)

// String returns the renderer-facing name of the state.
func (s CellState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFilled:
		return "filled"
	case StateToday:
		return "today"
	case StateHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// DefaultColumns is the column count used by the full-width grass grids.
// The home-screen widget passes its own narrower count.
const DefaultColumns = 16

// Layout is the matrix of per-day cell states for a span.
// LeadingPad is nonzero only in weekday-aligned year mode: it counts blank
// positions a renderer should leave before day 1 so columns line up under
// weekdays. Pad positions are not cells and carry no state.
type Layout struct {
	Columns    int
	LeadingPad int
	Rows       [][]CellState
}

// CellCount returns the number of day cells in the layout.
func (l Layout) CellCount() int {
	n := 0
	for _, row := range l.Rows {
		n += len(row)
	}
	return n
}

// FromSpan lays out sp's days 1..TotalDays in reading order and classifies
// each cell. Exactly one cell is StateHighlight (the final day, once
// reached) and at most one is StateToday; when the tracked range ends on
// the as-of day the terminal highlight wins over the today marker.
// PRE: cols >= 1
// POST: a TotalDays of 0 yields a layout with no rows
func FromSpan(sp span.Span, asOf time.Time, cols int) Layout {
	if cols < 1 {
		cols = DefaultColumns
	}
	if sp.TotalDays <= 0 {
		return Layout{Columns: cols}
	}

	elapsed := sp.ElapsedDays
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > sp.TotalDays {
		elapsed = sp.TotalDays
	}

	rows := make([][]CellState, 0, (sp.TotalDays+cols-1)/cols)
	var row []CellState
	for n := 1; n <= sp.TotalDays; n++ {
		if len(row) == 0 {
			row = make([]CellState, 0, cols)
		}
		row = append(row, classify(n, elapsed, sp, asOf))
		if len(row) == cols {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return Layout{Columns: cols, Rows: rows}
}

// classify assigns the state for cell n (1-based).
func classify(n, elapsed int, sp span.Span, asOf time.Time) CellState {
	if n > elapsed {
		return StateEmpty
	}
	if n == sp.TotalDays {
		return StateHighlight
	}
	cellDate := sp.Start.AddDate(0, 0, n-1)
	if calendar.SameDay(cellDate, asOf) {
		return StateToday
	}
	return StateFilled
}

// Year lays out the full calendar year grid used by the home screen and
// the default widget mode. With alignWeekday set, LeadingPad is Jan 1's
// weekday index (Sunday = 0) so renderers can align columns to weekdays;
// otherwise day 1 sits at position 0.
func Year(year int, asOf time.Time, cols int, alignWeekday bool) Layout {
	sp := span.ComputeYear(year, asOf)
	l := FromSpan(sp, asOf, cols)
	if alignWeekday {
		jan1 := time.Date(year, 1, 1, 12, 0, 0, 0, asOf.Location())
		l.LeadingPad = int(jan1.Weekday())
	}
	return l
}

// MonthLayout is the weekday-padded day-number matrix backing the month
// mini-calendar in the date picker. Zero entries are blank pad positions.
type MonthLayout struct {
	Year  int
	Month time.Month
	Weeks [][7]int
}

// MonthWeeks is the fixed week-row count the date picker renders, enough
// for any month at any starting weekday.
const MonthWeeks = 6

// Month builds the mini-calendar matrix for the given month: leading pad
// up to the weekday of the 1st, day numbers, trailing pad to MonthWeeks
// full weeks.
func Month(year int, month time.Month) MonthLayout {
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	startPad := int(first.Weekday())
	daysInMonth := last.Day()

	weeks := make([][7]int, MonthWeeks)
	for d := 1; d <= daysInMonth; d++ {
		pos := startPad + d - 1
		weeks[pos/7][pos%7] = d
	}
	return MonthLayout{Year: year, Month: month, Weeks: weeks}
}
