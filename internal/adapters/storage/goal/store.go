package goal

import (
	"context"
	"time"

	domain "fillit/internal/domain/goal"
)

// StorageKey is the durable key holding the JSON array of saved goals.
const StorageKey = "saved_dates"

// Store persists the goal collection. Every mutation is a whole-collection
// read-modify-write; concurrent writers are last-write-wins with no merge,
// an accepted limitation of the single-user usage pattern.
type Store interface {
	LoadAll(ctx context.Context) ([]domain.Goal, error)
	SaveAll(ctx context.Context, goals []domain.Goal) error
	Add(ctx context.Context, title string, baseDate, targetDate time.Time) (domain.Goal, error)
	Update(ctx context.Context, id, title string, baseDate, targetDate time.Time) error
	Remove(ctx context.Context, id string) error
}
