package projections

import (
	"context"
	"time"

	"fillit/internal/domain/grid"
	"fillit/internal/domain/theme"
)

// GetHomeViewQuery carries input for the home view projection.
type GetHomeViewQuery struct {
	AsOf         time.Time
	Columns      int  // 0 means grid.DefaultColumns
	AlignWeekday bool // pad the year grid so columns track weekdays
}

// GetHomeViewResult carries the output of the home view projection: the
// always-visible current-year snapshot, its grid, and the accent color
// renderers should fill cells with.
type GetHomeViewResult struct {
	Snapshot    Snapshot
	Percent     int
	Layout      grid.Layout
	AccentColor string
}

// GetHomeViewDeps holds dependencies for the home view projection.
type GetHomeViewDeps struct {
	ThemeStore ThemeStore
}

// QueryGetHomeView assembles the home screen's single read: year snapshot,
// year grid and accent color. A theme storage failure degrades to the
// default accent rather than failing the view.
// PRE: query.AsOf is a valid date
// POST: Layout has one cell per day of the as-of year
func QueryGetHomeView(ctx context.Context, query GetHomeViewQuery, deps GetHomeViewDeps) GetHomeViewResult {
	snap := ProjectYearSnapshot(query.AsOf)

	cols := query.Columns
	if cols < 1 {
		cols = grid.DefaultColumns
	}

	accent := theme.DefaultColor
	if deps.ThemeStore != nil {
		if c, err := deps.ThemeStore.Get(ctx); err == nil {
			accent = c
		}
	}

	layout := grid.Year(query.AsOf.Year(), query.AsOf, cols, query.AlignWeekday)

	return GetHomeViewResult{
		Snapshot:    snap,
		Percent:     snap.PercentComplete(),
		Layout:      layout,
		AccentColor: accent,
	}
}
