package widget

import (
	"context"

	domain "fillit/internal/domain/widget"
)

// Store persists per-instance widget configurations.
type Store interface {
	// Get returns the configuration for a widget instance. Missing or
	// corrupt configurations yield the year-mode default, never an error;
	// errors are reserved for storage failures.
	Get(ctx context.Context, widgetID int) (domain.Config, error)
	Save(ctx context.Context, widgetID int, cfg domain.Config) error
	Delete(ctx context.Context, widgetID int) error
}
