package projections

import (
	"context"
	"time"

	"fillit/internal/domain/goal"
)

// GetGoalListQuery carries input for the goal list projection.
type GetGoalListQuery struct {
	AsOf time.Time
}

// GoalListItem is one row of the list screen: the goal plus its progress
// numbers for the as-of date.
type GoalListItem struct {
	Goal     goal.Goal
	Snapshot Snapshot
	Percent  int
}

// GetGoalListResult carries the output of the goal list projection.
type GetGoalListResult struct {
	Items []GoalListItem
}

// GetGoalListDeps holds dependencies for the goal list projection.
type GetGoalListDeps struct {
	GoalStore GoalListStore
}

// QueryGetGoalList loads the saved goals sorted by target date with each
// one's span computed against the same as-of date. The collection is
// re-read on every call; nothing is cached across invocations.
// PRE: query.AsOf is a valid date
// POST: items are ordered by target date ascending
func QueryGetGoalList(ctx context.Context, query GetGoalListQuery, deps GetGoalListDeps) (GetGoalListResult, error) {
	goals, err := deps.GoalStore.LoadAll(ctx)
	if err != nil {
		return GetGoalListResult{}, err
	}

	goal.SortByTargetDate(goals)

	items := make([]GoalListItem, 0, len(goals))
	for _, g := range goals {
		snap := ProjectGoalSnapshot(g, query.AsOf)
		items = append(items, GoalListItem{
			Goal:     g,
			Snapshot: snap,
			Percent:  snap.PercentComplete(),
		})
	}
	return GetGoalListResult{Items: items}, nil
}
