// Package calendar provides the date arithmetic shared by span and grid
// computations. All functions operate on local calendar fields only; no
// function reads the wall clock.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates in persisted records.
const DateLayout = "2006-01-02"

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal day of d within its year.
// PRE: d is a valid time
// POST: result is in [1, 366]
func DayOfYear(d time.Time) int {
	return d.YearDay()
}

// Midday normalizes d to 12:00 local time on the same calendar day.
// Anchoring at noon keeps daylight-saving transitions from shifting a
// date onto the adjacent day during day-count arithmetic.
func Midday(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, d.Location())
}

// ParseDate parses a YYYY-MM-DD string into a noon-anchored local date.
// PRE: s is in YYYY-MM-DD form
// POST: returns the parsed date or an error for malformed input
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Midday(t), nil
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// SignedDays returns the number of calendar days from a to b, negative
// when b precedes a. Used for ordering checks, not span lengths.
// Counting happens on UTC-rebased calendar fields so daylight-saving
// length changes in the local zone cannot skew the difference.
func SignedDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// InclusiveDays returns the number of calendar days from a to b counting
// both endpoints, so InclusiveDays(a, a) == 1.
// PRE: a <= b (same or earlier calendar day)
// POST: result >= 1
func InclusiveDays(a, b time.Time) int {
	return SignedDays(a, b) + 1
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
