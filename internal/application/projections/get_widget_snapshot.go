package projections

import (
	"context"
	"time"

	"fillit/internal/domain/goal"
	"fillit/internal/domain/grid"
	"fillit/internal/domain/widget"
)

// GetWidgetSnapshotQuery carries input for the widget snapshot projection.
type GetWidgetSnapshotQuery struct {
	WidgetID int
	AsOf     time.Time
	Columns  int // 0 means grid.DefaultColumns
}

// GetWidgetSnapshotResult carries the output of the widget snapshot
// projection: the same snapshot the interactive screens use, plus the
// cell matrix the widget renders.
type GetWidgetSnapshotResult struct {
	Snapshot Snapshot
	Percent  int
	Layout   grid.Layout
}

// GetWidgetSnapshotDeps holds dependencies for the widget snapshot
// projection.
type GetWidgetSnapshotDeps struct {
	WidgetConfigStore WidgetConfigStore
}

// QueryGetWidgetSnapshot resolves a widget instance's configuration and
// projects its snapshot. Any configuration problem, including a storage
// failure, falls back to year mode so the widget always renders.
// PRE: query.AsOf is a valid date
// POST: result numbers match the interactive screens for the same inputs
func QueryGetWidgetSnapshot(ctx context.Context, query GetWidgetSnapshotQuery, deps GetWidgetSnapshotDeps) GetWidgetSnapshotResult {
	cfg := widget.YearConfig()
	if deps.WidgetConfigStore != nil {
		if c, err := deps.WidgetConfigStore.Get(ctx, query.WidgetID); err == nil {
			cfg = c
		}
	}

	var snap Snapshot
	switch cfg.Mode {
	case widget.ModeDate:
		snap = ProjectGoalSnapshot(goal.Goal{
			ID:         cfg.ID,
			Title:      cfg.Title,
			BaseDate:   cfg.BaseDate,
			TargetDate: cfg.TargetDate,
		}, query.AsOf)
	default:
		snap = ProjectYearSnapshot(query.AsOf)
	}

	cols := query.Columns
	if cols < 1 {
		cols = grid.DefaultColumns
	}

	return GetWidgetSnapshotResult{
		Snapshot: snap,
		Percent:  snap.PercentComplete(),
		Layout:   grid.FromSpan(snap.Span, query.AsOf, cols),
	}
}
