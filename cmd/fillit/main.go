package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"fillit/internal/adapters/storage"
	goalStorePkg "fillit/internal/adapters/storage/goal"
	themeStorePkg "fillit/internal/adapters/storage/theme"
	widgetStorePkg "fillit/internal/adapters/storage/widget"
	"fillit/internal/application/projections"
	"fillit/internal/domain/grid"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local overrides; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	dbPath := envOr("FILLIT_DB", "fillit.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	timedDB := storage.NewTimedDB(db)
	goalStore := goalStorePkg.NewSQLiteStore(timedDB)
	widgetStore := widgetStorePkg.NewSQLiteStore(timedDB)
	themeStore := themeStorePkg.NewSQLiteStore(timedDB)

	ctx := context.Background()
	now := time.Now()
	columns := envInt("FILLIT_COLUMNS", grid.DefaultColumns)
	alignWeekday := envOr("FILLIT_ALIGN_WEEKDAY", "") == "1"

	if c := os.Getenv("FILLIT_ACCENT"); c != "" {
		if err := themeStore.Set(ctx, c); err != nil {
			log.Printf("failed to store accent color: %v", err)
		}
	}

	home := projections.QueryGetHomeView(ctx, projections.GetHomeViewQuery{
		AsOf:         now,
		Columns:      columns,
		AlignWeekday: alignWeekday,
	}, projections.GetHomeViewDeps{ThemeStore: themeStore})

	fmt.Printf("fillit %s — %s (%d%% of %d days, accent %s)\n\n",
		version, home.Snapshot.Title, home.Percent, home.Snapshot.TotalDays, home.AccentColor)
	printLayout(home.Layout)

	list, err := projections.QueryGetGoalList(ctx,
		projections.GetGoalListQuery{AsOf: now},
		projections.GetGoalListDeps{GoalStore: goalStore})
	if err != nil {
		log.Fatalf("failed to load goals: %v", err)
	}

	if len(list.Items) > 0 {
		fmt.Println("\nGoals:")
		for _, item := range list.Items {
			fmt.Printf("  %-24s %s → %s  %d/%d days (%d%%)\n",
				item.Goal.Title,
				item.Goal.BaseDate.Format("2006-01-02"),
				item.Goal.TargetDate.Format("2006-01-02"),
				item.Snapshot.ElapsedDays, item.Snapshot.TotalDays, item.Percent)
		}
	}

	if widgetID, ok := envIntOk("FILLIT_WIDGET_ID"); ok {
		res := projections.QueryGetWidgetSnapshot(ctx,
			projections.GetWidgetSnapshotQuery{WidgetID: widgetID, AsOf: now, Columns: columns},
			projections.GetWidgetSnapshotDeps{WidgetConfigStore: widgetStore})
		fmt.Printf("\nWidget %d — %s (%d%%)\n", widgetID, res.Snapshot.Title, res.Percent)
		printLayout(res.Layout)
	}
}

// cellGlyphs maps cell states to terminal glyphs, indexed by CellState.
var cellGlyphs = map[grid.CellState]rune{
	grid.StateEmpty:     '.',
	grid.StateFilled:    '#',
	grid.StateToday:     'o',
	grid.StateHighlight: '*',
}

// printLayout renders a cell matrix to stdout. Weekday-aligned layouts
// carry a leading pad, so cells are refolded against it to keep columns
// lined up across rows.
func printLayout(l grid.Layout) {
	if len(l.Rows) == 0 {
		return
	}
	col := 0
	for ; col < l.LeadingPad; col++ {
		fmt.Print("  ")
	}
	for _, row := range l.Rows {
		for _, cell := range row {
			fmt.Printf("%c ", cellGlyphs[cell])
			col++
			if col == l.Columns {
				fmt.Println()
				col = 0
			}
		}
	}
	if col != 0 {
		fmt.Println()
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, ok := envIntOk(key); ok {
		return n
	}
	return fallback
}

func envIntOk(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
