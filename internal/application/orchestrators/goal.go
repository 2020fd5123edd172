// Package orchestrators holds the write-side use cases. Each orchestrator
// validates its input against the domain rules before anything touches
// storage; invalid ranges are never persisted.
package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"fillit/internal/domain/goal"
)

// GoalStoreForOrchestrator defines the store interface needed by goal
// orchestrators.
type GoalStoreForOrchestrator interface {
	Add(ctx context.Context, title string, baseDate, targetDate time.Time) (goal.Goal, error)
	Update(ctx context.Context, id, title string, baseDate, targetDate time.Time) error
	Remove(ctx context.Context, id string) error
}

// --- Create Goal ---

// CreateGoalInput carries input for the create goal orchestrator.
type CreateGoalInput struct {
	Title      string
	BaseDate   time.Time
	TargetDate time.Time
}

// CreateGoalDeps holds dependencies for CreateGoal.
type CreateGoalDeps struct {
	GoalStore GoalStoreForOrchestrator
}

// ExecuteCreateGoal validates and persists a new goal.
// PRE: none
// POST: a goal with a fresh id is persisted, or a domain error explains
// why the input was rejected
func ExecuteCreateGoal(ctx context.Context, input CreateGoalInput, deps CreateGoalDeps) (goal.Goal, error) {
	candidate := goal.Goal{
		Title:      input.Title,
		BaseDate:   input.BaseDate,
		TargetDate: input.TargetDate,
	}
	if err := candidate.Validate(); err != nil {
		return goal.Goal{}, err
	}

	g, err := deps.GoalStore.Add(ctx, input.Title, input.BaseDate, input.TargetDate)
	if err != nil {
		return goal.Goal{}, err
	}

	slog.Info("goal_event", "event", "goal_created", "goal_id", g.ID, "days", g.Days())
	return g, nil
}

// --- Update Goal ---

// UpdateGoalInput carries input for the update goal orchestrator.
type UpdateGoalInput struct {
	GoalID     string
	Title      string
	BaseDate   time.Time
	TargetDate time.Time
}

// UpdateGoalDeps holds dependencies for UpdateGoal.
type UpdateGoalDeps struct {
	GoalStore GoalStoreForOrchestrator
}

// ExecuteUpdateGoal validates and replaces a goal's fields wholesale.
// An absent id is a no-op, matching the store contract.
// PRE: none
// POST: the stored goal, if present, carries the new fields
func ExecuteUpdateGoal(ctx context.Context, input UpdateGoalInput, deps UpdateGoalDeps) error {
	candidate := goal.Goal{
		ID:         input.GoalID,
		Title:      input.Title,
		BaseDate:   input.BaseDate,
		TargetDate: input.TargetDate,
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := deps.GoalStore.Update(ctx, input.GoalID, input.Title, input.BaseDate, input.TargetDate); err != nil {
		return err
	}

	slog.Info("goal_event", "event", "goal_updated", "goal_id", input.GoalID)
	return nil
}

// --- Remove Goal ---

// RemoveGoalInput carries input for the remove goal orchestrator.
type RemoveGoalInput struct {
	GoalID string
}

// RemoveGoalDeps holds dependencies for RemoveGoal.
type RemoveGoalDeps struct {
	GoalStore GoalStoreForOrchestrator
}

// ExecuteRemoveGoal deletes a goal by id. An absent id is a no-op.
// PRE: none
// POST: no goal with the given id remains
func ExecuteRemoveGoal(ctx context.Context, input RemoveGoalInput, deps RemoveGoalDeps) error {
	if err := deps.GoalStore.Remove(ctx, input.GoalID); err != nil {
		return err
	}

	slog.Info("goal_event", "event", "goal_removed", "goal_id", input.GoalID)
	return nil
}
