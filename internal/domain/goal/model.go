package goal

import (
	"errors"
	"sort"
	"strings"
	"time"

	"fillit/internal/domain/calendar"
)

// Domain errors
var (
	ErrEmptyTitle      = errors.New("goal title cannot be empty")
	ErrEmptyBaseDate   = errors.New("base date cannot be zero")
	ErrEmptyTargetDate = errors.New("target date cannot be zero")
	ErrBaseAfterTarget = errors.New("base date must be on or before target date")
)

// Goal is a user-defined tracking target: a named inclusive date range.
// Equal base and target dates yield a one-day span.
type Goal struct {
	ID         string
	Title      string
	BaseDate   time.Time
	TargetDate time.Time
}

// Validate checks if the Goal has valid data.
// PRE: Goal struct is populated
// POST: Returns nil if valid, error otherwise
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	if g.BaseDate.IsZero() {
		return ErrEmptyBaseDate
	}
	if g.TargetDate.IsZero() {
		return ErrEmptyTargetDate
	}
	if calendar.SignedDays(g.BaseDate, g.TargetDate) < 0 {
		return ErrBaseAfterTarget
	}
	return nil
}

// Days returns the inclusive length of the tracked range in days.
// PRE: Goal has been validated
// POST: result >= 1
func (g *Goal) Days() int {
	return calendar.InclusiveDays(g.BaseDate, g.TargetDate)
}

// Contains returns true if the given date falls within the tracked range.
// INVARIANT: Goal fields are not mutated
func (g *Goal) Contains(date time.Time) bool {
	return calendar.SignedDays(g.BaseDate, date) >= 0 &&
		calendar.SignedDays(date, g.TargetDate) >= 0
}

// SortByTargetDate orders goals by target date ascending, the order the
// list screen and widget configuration present them in. Ties keep the
// natural string order of the formatted date, which is stable for equal
// dates.
func SortByTargetDate(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		return calendar.FormatDate(goals[i].TargetDate) < calendar.FormatDate(goals[j].TargetDate)
	})
}
