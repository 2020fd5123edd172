package goal

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fillit/internal/adapters/storage"
	"fillit/internal/domain/calendar"
	domain "fillit/internal/domain/goal"
)

// record is the persisted JSON shape of one goal. Early releases stored a
// single "date" field instead of the base/target pair; it is read but
// never written back.
type record struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	BaseDate   string `json:"baseDate,omitempty"`
	TargetDate string `json:"targetDate,omitempty"`
	Date       string `json:"date,omitempty"`
}

// SQLiteStore implements Store on the SQLite-backed key-value table.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// LoadAll reads and migrates the stored goal collection. A missing or
// corrupt payload yields an empty collection, never an error surfaced as
// fatal; individual malformed records are normalized to safe defaults.
// PRE: none
// POST: every returned goal has both BaseDate and TargetDate populated
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]domain.Goal, error) {
	raw, ok, err := storage.GetValue(ctx, s.db, StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Goal{}, nil
	}

	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.Warn("goal_store", "event", "corrupt_collection", "error", err)
		return []domain.Goal{}, nil
	}

	goals := make([]domain.Goal, 0, len(records))
	for _, r := range records {
		goals = append(goals, migrate(r))
	}
	return goals, nil
}

// migrate normalizes one stored record: legacy single-date records get
// base and target populated from the one value, missing text fields
// coerce to empty strings, and unparseable dates degrade to zero values
// rather than failing the batch.
func migrate(r record) domain.Goal {
	baseStr := r.BaseDate
	if baseStr == "" {
		baseStr = r.Date
	}
	targetStr := r.TargetDate
	if targetStr == "" {
		targetStr = r.Date
	}

	g := domain.Goal{ID: r.ID, Title: r.Title}
	if baseStr != "" {
		base, err := calendar.ParseDate(baseStr)
		if err != nil {
			slog.Warn("goal_store", "event", "bad_base_date", "goal_id", r.ID, "value", baseStr)
		} else {
			g.BaseDate = base
		}
	}
	if targetStr != "" {
		target, err := calendar.ParseDate(targetStr)
		if err != nil {
			slog.Warn("goal_store", "event", "bad_target_date", "goal_id", r.ID, "value", targetStr)
		} else {
			g.TargetDate = target
		}
	}
	return g
}

// SaveAll persists the entire collection, replacing the stored payload.
// PRE: goals have been validated by the caller
// POST: the stored JSON array matches goals, in the current schema
func (s *SQLiteStore) SaveAll(ctx context.Context, goals []domain.Goal) error {
	records := make([]record, 0, len(goals))
	for _, g := range goals {
		records = append(records, record{
			ID:         g.ID,
			Title:      g.Title,
			BaseDate:   formatOrEmpty(g.BaseDate),
			TargetDate: formatOrEmpty(g.TargetDate),
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return storage.SetValue(ctx, s.db, StorageKey, string(payload))
}

// Add appends a new goal with a fresh unique id and persists the updated
// collection.
// PRE: title is non-empty and baseDate <= targetDate (caller validated)
// POST: the new goal is persisted and returned with its generated id
func (s *SQLiteStore) Add(ctx context.Context, title string, baseDate, targetDate time.Time) (domain.Goal, error) {
	goals, err := s.LoadAll(ctx)
	if err != nil {
		return domain.Goal{}, err
	}

	g := domain.Goal{
		ID:         uuid.New().String(),
		Title:      title,
		BaseDate:   baseDate,
		TargetDate: targetDate,
	}
	goals = append(goals, g)
	if err := s.SaveAll(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	return g, nil
}

// Update replaces the matching goal's fields wholesale. Absent ids are a
// no-op.
// PRE: title is non-empty and baseDate <= targetDate (caller validated)
// POST: the goal with the given id, if any, carries the new fields
func (s *SQLiteStore) Update(ctx context.Context, id, title string, baseDate, targetDate time.Time) error {
	goals, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range goals {
		if goals[i].ID == id {
			goals[i].Title = title
			goals[i].BaseDate = baseDate
			goals[i].TargetDate = targetDate
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.SaveAll(ctx, goals)
}

// Remove deletes the matching goal. Absent ids are a no-op.
// PRE: none
// POST: no goal with the given id remains
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	goals, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(goals) {
		return nil
	}
	return s.SaveAll(ctx, kept)
}

// formatOrEmpty keeps degenerate zero dates out of the stored payload.
func formatOrEmpty(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return calendar.FormatDate(d)
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)

