package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
	"hyprstash/internal/ports"
)

// SnapshotCollector builds the point-in-time compositor view used by one invocation
type SnapshotCollector struct {
	reader ports.HyprlandReader
}

// NewSnapshotCollector creates a new SnapshotCollector
func NewSnapshotCollector(reader ports.HyprlandReader) *SnapshotCollector {
	return &SnapshotCollector{
		reader: reader,
	}
}

// Collect queries monitors, workspaces and windows concurrently and fails with
// ErrNoFocusedTarget when no monitor reports focus. The three queries are not
// issued in sequence, so they may observe slightly different compositor states;
// the first failure cancels the others. The result is never
// refreshed: operations that follow act on this view even if the compositor
// changes underneath them.
func (c *SnapshotCollector) Collect(ctx context.Context) (*domain.Snapshot, error) {
	var (
		monitors   []domain.Monitor
		windows    []domain.Window
		workspaces []domain.Workspace
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		monitors, err = c.reader.Monitors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		workspaces, err = c.reader.Workspaces(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		windows, err = c.reader.Windows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to collect snapshot", "error", err)
		return nil, fmt.Errorf("failed to collect snapshot: %w", err)
	}

	snap := &domain.Snapshot{
		Monitors:   monitors,
		Windows:    windows,
		Workspaces: workspaces,
	}

	focused := false
	for _, m := range monitors {
		if m.Focused {
			snap.ActiveMonitor = m.ID
			snap.ActiveWorkspace = m.ActiveWorkspace
			focused = true
			break
		}
	}
	if !focused {
		return nil, domain.ErrNoFocusedTarget
	}

	logging.Logger.Debug("Snapshot collected",
		"monitors", len(monitors),
		"workspaces", len(workspaces),
		"windows", len(windows),
		"active_monitor", snap.ActiveMonitor,
		"active_workspace", snap.ActiveWorkspace)

	return snap, nil
}
