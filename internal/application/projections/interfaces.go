package projections

import (
	"context"

	"fillit/internal/domain/goal"
	"fillit/internal/domain/widget"
)

// GoalListStore interface for goal collection queries.
type GoalListStore interface {
	LoadAll(ctx context.Context) ([]goal.Goal, error)
}

// WidgetConfigStore interface for per-widget configuration queries.
type WidgetConfigStore interface {
	Get(ctx context.Context, widgetID int) (widget.Config, error)
}

// ThemeStore interface for accent color queries.
type ThemeStore interface {
	Get(ctx context.Context) (string, error)
}
