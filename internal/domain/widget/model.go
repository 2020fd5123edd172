// Package widget models the home-screen widget configuration. Each
// platform widget instance carries its own config keyed by its numeric
// instance id.
package widget

import (
	"errors"
	"fmt"
	"time"

	"fillit/internal/domain/calendar"
)

// Widget modes.
const (
	ModeYear = "year" // track the current calendar year
	ModeDate = "date" // track a saved goal's date range
)

// Domain errors
var (
	ErrInvalidMode  = errors.New("widget mode must be 'year' or 'date'")
	ErrMissingRange = errors.New("date mode requires base and target dates")
)

// Config holds one widget instance's tracking configuration. The goal
// fields are populated only in date mode; they are copied from the saved
// goal at configuration time so the widget renders even if the goal is
// later removed.
type Config struct {
	Mode       string
	ID         string
	Title      string
	BaseDate   time.Time
	TargetDate time.Time
}

// YearConfig returns the default configuration tracking the current year.
func YearConfig() Config {
	return Config{Mode: ModeYear}
}

// Validate checks if the Config has valid data.
// PRE: Config struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeYear:
		return nil
	case ModeDate:
		if c.BaseDate.IsZero() || c.TargetDate.IsZero() {
			return ErrMissingRange
		}
		if calendar.SignedDays(c.BaseDate, c.TargetDate) < 0 {
			return ErrMissingRange
		}
		return nil
	default:
		return ErrInvalidMode
	}
}

// ConfigKey returns the durable storage key for a widget instance.
func ConfigKey(widgetID int) string {
	return fmt.Sprintf("widget_config_%d", widgetID)
}
