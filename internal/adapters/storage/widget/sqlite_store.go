package widget

import (
	"context"
	"encoding/json"
	"log/slog"

	"fillit/internal/adapters/storage"
	"fillit/internal/domain/calendar"
	domain "fillit/internal/domain/widget"
)

// payload is the persisted JSON shape of a widget configuration. The goal
// fields are present only in date mode.
type payload struct {
	Mode       string `json:"mode"`
	ID         string `json:"id,omitempty"`
	Title      string `json:"title,omitempty"`
	BaseDate   string `json:"baseDate,omitempty"`
	TargetDate string `json:"targetDate,omitempty"`
}

// SQLiteStore implements Store on the SQLite-backed key-value table.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get reads a widget instance's configuration, defaulting to year mode
// whenever nothing usable is stored.
// PRE: none
// POST: the returned config passes Validate, or an error is returned for
// storage failures only
func (s *SQLiteStore) Get(ctx context.Context, widgetID int) (domain.Config, error) {
	raw, ok, err := storage.GetValue(ctx, s.db, domain.ConfigKey(widgetID))
	if err != nil {
		return domain.YearConfig(), err
	}
	if !ok {
		return domain.YearConfig(), nil
	}

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		slog.Warn("widget_store", "event", "corrupt_config", "widget_id", widgetID, "error", err)
		return domain.YearConfig(), nil
	}

	cfg := domain.Config{Mode: p.Mode, ID: p.ID, Title: p.Title}
	if p.BaseDate != "" {
		if d, err := calendar.ParseDate(p.BaseDate); err == nil {
			cfg.BaseDate = d
		}
	}
	if p.TargetDate != "" {
		if d, err := calendar.ParseDate(p.TargetDate); err == nil {
			cfg.TargetDate = d
		}
	}
	if err := cfg.Validate(); err != nil {
		slog.Warn("widget_store", "event", "invalid_config", "widget_id", widgetID, "error", err)
		return domain.YearConfig(), nil
	}
	return cfg, nil
}

// Save persists a widget instance's configuration.
// PRE: cfg passes Validate
// POST: the configuration is stored under the instance key
func (s *SQLiteStore) Save(ctx context.Context, widgetID int, cfg domain.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := payload{Mode: cfg.Mode}
	if cfg.Mode == domain.ModeDate {
		p.ID = cfg.ID
		p.Title = cfg.Title
		p.BaseDate = calendar.FormatDate(cfg.BaseDate)
		p.TargetDate = calendar.FormatDate(cfg.TargetDate)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return storage.SetValue(ctx, s.db, domain.ConfigKey(widgetID), string(raw))
}

// Delete removes a widget instance's configuration, typically when the
// platform reports the widget was removed from the home screen.
// PRE: none
// POST: the instance key is absent
func (s *SQLiteStore) Delete(ctx context.Context, widgetID int) error {
	return storage.DeleteValue(ctx, s.db, domain.ConfigKey(widgetID))
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
