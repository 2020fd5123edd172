package widget_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"fillit/internal/adapters/storage"
	widgetStore "fillit/internal/adapters/storage/widget"
	domain "fillit/internal/domain/widget"
)

// openTestDB creates an in-memory SQLite database with the kv schema.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

// TestGet_DefaultsToYearMode tests the missing-config fallback.
func TestGet_DefaultsToYearMode(t *testing.T) {
	store := widgetStore.NewSQLiteStore(openTestDB(t))

	cfg, err := store.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Mode != domain.ModeYear {
		t.Errorf("mode = %q, want year", cfg.Mode)
	}
}

// TestGet_CorruptDefaultsToYearMode tests the corrupt-config fallback.
func TestGet_CorruptDefaultsToYearMode(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	if err := storage.SetValue(ctx, db, domain.ConfigKey(3), `{"mode":`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := widgetStore.NewSQLiteStore(db)

	cfg, err := store.Get(ctx, 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Mode != domain.ModeYear {
		t.Errorf("mode = %q, want year", cfg.Mode)
	}

	// A structurally valid but semantically broken config also falls back.
	if err := storage.SetValue(ctx, db, domain.ConfigKey(4), `{"mode":"date","id":"x"}`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cfg, err = store.Get(ctx, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.Mode != domain.ModeYear {
		t.Errorf("mode = %q, want year fallback for invalid date config", cfg.Mode)
	}
}

// TestSaveGet_RoundTrip tests both modes round-tripping per instance.
func TestSaveGet_RoundTrip(t *testing.T) {
	store := widgetStore.NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	dateCfg := domain.Config{
		Mode:       domain.ModeDate,
		ID:         "g1",
		Title:      "Marathon",
		BaseDate:   day(2024, 1, 1),
		TargetDate: day(2024, 4, 30),
	}
	if err := store.Save(ctx, 7, dateCfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, 8, domain.YearConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, 7)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Mode != domain.ModeDate || got.ID != "g1" || got.Title != "Marathon" {
		t.Errorf("config = %+v", got)
	}
	if !got.BaseDate.Equal(dateCfg.BaseDate) || !got.TargetDate.Equal(dateCfg.TargetDate) {
		t.Errorf("dates = %v/%v", got.BaseDate, got.TargetDate)
	}

	got, err = store.Get(ctx, 8)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Mode != domain.ModeYear {
		t.Errorf("instance 8 mode = %q, want year", got.Mode)
	}
}

// TestSave_RejectsInvalid tests that broken configs never reach storage.
func TestSave_RejectsInvalid(t *testing.T) {
	store := widgetStore.NewSQLiteStore(openTestDB(t))

	err := store.Save(context.Background(), 1, domain.Config{Mode: "week"})
	if err != domain.ErrInvalidMode {
		t.Errorf("Save error = %v, want ErrInvalidMode", err)
	}
}

// TestDelete tests instance config removal.
func TestDelete(t *testing.T) {
	store := widgetStore.NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	cfg := domain.Config{
		Mode:       domain.ModeDate,
		ID:         "g1",
		Title:      "X",
		BaseDate:   day(2024, 1, 1),
		TargetDate: day(2024, 2, 1),
	}
	if err := store.Save(ctx, 5, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := store.Get(ctx, 5)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Mode != domain.ModeYear {
		t.Errorf("mode after delete = %q, want year", got.Mode)
	}

	// Deleting an absent instance is a no-op.
	if err := store.Delete(ctx, 99); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
}
