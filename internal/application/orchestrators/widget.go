package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"fillit/internal/application/projections"
	"fillit/internal/domain/widget"
)

// WidgetConfigStoreForOrchestrator defines the store interface needed by
// widget orchestrators.
type WidgetConfigStoreForOrchestrator interface {
	Get(ctx context.Context, widgetID int) (widget.Config, error)
	Save(ctx context.Context, widgetID int, cfg widget.Config) error
	Delete(ctx context.Context, widgetID int) error
}

// --- Configure Widget ---

// ConfigureWidgetInput carries input for the configure widget orchestrator.
type ConfigureWidgetInput struct {
	WidgetID int
	Config   widget.Config
	AsOf     time.Time
}

// ConfigureWidgetDeps holds dependencies for ConfigureWidget.
type ConfigureWidgetDeps struct {
	WidgetConfigStore WidgetConfigStoreForOrchestrator
}

// ExecuteConfigureWidget validates and persists a widget instance's
// configuration, then returns the refreshed snapshot so the platform can
// re-render the widget immediately.
// PRE: none
// POST: the config is persisted and the returned snapshot reflects it
func ExecuteConfigureWidget(ctx context.Context, input ConfigureWidgetInput, deps ConfigureWidgetDeps) (projections.GetWidgetSnapshotResult, error) {
	if err := input.Config.Validate(); err != nil {
		return projections.GetWidgetSnapshotResult{}, err
	}

	if err := deps.WidgetConfigStore.Save(ctx, input.WidgetID, input.Config); err != nil {
		return projections.GetWidgetSnapshotResult{}, err
	}

	slog.Info("widget_event", "event", "widget_configured",
		"widget_id", input.WidgetID, "mode", input.Config.Mode)

	res := projections.QueryGetWidgetSnapshot(ctx,
		projections.GetWidgetSnapshotQuery{WidgetID: input.WidgetID, AsOf: input.AsOf},
		projections.GetWidgetSnapshotDeps{WidgetConfigStore: deps.WidgetConfigStore})
	return res, nil
}

// --- Remove Widget ---

// RemoveWidgetInput carries input for the remove widget orchestrator.
type RemoveWidgetInput struct {
	WidgetID int
}

// RemoveWidgetDeps holds dependencies for RemoveWidget.
type RemoveWidgetDeps struct {
	WidgetConfigStore WidgetConfigStoreForOrchestrator
}

// ExecuteRemoveWidget drops a widget instance's configuration after the
// platform reports the widget was deleted from the home screen.
// PRE: none
// POST: no configuration remains for the instance
func ExecuteRemoveWidget(ctx context.Context, input RemoveWidgetInput, deps RemoveWidgetDeps) error {
	if err := deps.WidgetConfigStore.Delete(ctx, input.WidgetID); err != nil {
		return err
	}
	slog.Info("widget_event", "event", "widget_removed", "widget_id", input.WidgetID)
	return nil
}

// --- Refresh Widgets ---

// RefreshWidgetsInput carries input for the refresh widgets orchestrator.
// The platform scheduler invokes it once daily at local midnight with the
// new current date.
type RefreshWidgetsInput struct {
	WidgetIDs []int
	AsOf      time.Time
}

// RefreshWidgetsDeps holds dependencies for RefreshWidgets.
type RefreshWidgetsDeps struct {
	WidgetConfigStore WidgetConfigStoreForOrchestrator
}

// ExecuteRefreshWidgets recomputes every listed widget instance's snapshot
// for the new date. Within a tracked range, each refresh advances elapsed
// progress by exactly one day.
// PRE: none
// POST: one result per input id
func ExecuteRefreshWidgets(ctx context.Context, input RefreshWidgetsInput, deps RefreshWidgetsDeps) map[int]projections.GetWidgetSnapshotResult {
	results := make(map[int]projections.GetWidgetSnapshotResult, len(input.WidgetIDs))
	for _, id := range input.WidgetIDs {
		results[id] = projections.QueryGetWidgetSnapshot(ctx,
			projections.GetWidgetSnapshotQuery{WidgetID: id, AsOf: input.AsOf},
			projections.GetWidgetSnapshotDeps{WidgetConfigStore: deps.WidgetConfigStore})
	}

	slog.Info("widget_event", "event", "widgets_refreshed",
		"count", len(results), "as_of", input.AsOf.Format("2006-01-02"))
	return results
}
