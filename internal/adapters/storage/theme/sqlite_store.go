package theme

import (
	"context"
	"log/slog"

	"fillit/internal/adapters/storage"
	domain "fillit/internal/domain/theme"
)

// SQLiteStore implements Store on the SQLite-backed key-value table.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get reads the stored accent color and normalizes it. Legacy mint values
// and anything outside the preset palette are rewritten to the default in
// storage so later loads see a clean value.
// PRE: none
// POST: the returned color is a preset palette member
func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	raw, ok, err := storage.GetValue(ctx, s.db, StorageKey)
	if err != nil {
		return domain.DefaultColor, err
	}
	if !ok {
		return domain.DefaultColor, nil
	}

	color := domain.Normalize(raw)
	if color != raw {
		slog.Info("theme_store", "event", "color_rewritten", "from", raw, "to", color)
		if err := storage.SetValue(ctx, s.db, StorageKey, color); err != nil {
			return color, err
		}
	}
	return color, nil
}

// Set stores an accent color choice.
// PRE: color is a preset palette member (callers pick from the palette)
// POST: the normalized color is persisted
func (s *SQLiteStore) Set(ctx context.Context, color string) error {
	return storage.SetValue(ctx, s.db, StorageKey, domain.Normalize(color))
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
