package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
)

// StashMonitor stashes every workspace assigned to monitor, in snapshot order,
// and records that order as the layout used to remap at pop time.
func (e *StashEngine) StashMonitor(
	ctx context.Context,
	snap *domain.Snapshot,
	monitor domain.MonitorID,
	holding domain.WorkspaceID,
) (domain.StashedMonitor, domain.BatchResult, error) {
	return e.stashMonitor(ctx, snap, monitor, holding, e.recordFocusedMonitor)
}

func (e *StashEngine) stashMonitor(
	ctx context.Context,
	snap *domain.Snapshot,
	monitor domain.MonitorID,
	holding domain.WorkspaceID,
	recordFocused bool,
) (domain.StashedMonitor, domain.BatchResult, error) {
	if !snap.HasMonitor(monitor) {
		return domain.StashedMonitor{}, domain.BatchResult{}, fmt.Errorf("%w: %d", domain.ErrMonitorNotFound, monitor)
	}

	layout := snap.WorkspacesOn(monitor)
	logging.Logger.Info("Stashing monitor",
		"monitor", monitor,
		"layout", layout,
		"holding", holding)

	var batch domain.BatchResult
	workspaces := make([]domain.StashedWorkspace, 0, len(layout))
	for _, workspace := range layout {
		stashed, workspaceBatch := e.StashWorkspace(ctx, snap, workspace, holding)
		workspaces = append(workspaces, stashed)
		batch.Merge(workspaceBatch)
	}

	original := monitor
	if recordFocused {
		original = snap.ActiveMonitor
		if original != monitor {
			logging.Logger.Warn("Recording focused monitor as stash origin",
				"stashed_monitor", monitor,
				"focused_monitor", original)
		}
	}

	if layout == nil {
		layout = []domain.WorkspaceID{}
	}

	return domain.StashedMonitor{
		Layout:          layout,
		OriginalMonitor: original,
		Workspaces:      workspaces,
	}, batch, nil
}

// RemapLayout pairs a stashed layout with the destination monitor's current
// workspaces by position. Positions the destination lacks get fresh ids
// counting up from nextID. Ids are not stable across compositor restarts, so
// identity is deliberately ignored.
func RemapLayout(layout, existing []domain.WorkspaceID, nextID domain.WorkspaceID) map[domain.WorkspaceID]domain.WorkspaceID {
	mapping := make(map[domain.WorkspaceID]domain.WorkspaceID, len(layout))
	for i, stashed := range layout {
		if i < len(existing) {
			mapping[stashed] = existing[i]
			continue
		}
		mapping[stashed] = nextID
		nextID++
	}
	return mapping
}

// PopMonitorAbsolute restores a stashed monitor onto target (or its original
// monitor when target is nil), remapping workspaces by position. Workspaces
// already restored are not rolled back when a later one fails.
func (e *StashEngine) PopMonitorAbsolute(
	ctx context.Context,
	snap *domain.Snapshot,
	record domain.StashedMonitor,
	target *domain.MonitorID,
) (domain.BatchResult, error) {
	destination := record.OriginalMonitor
	if target != nil {
		destination = *target
	}
	nextID := snap.MaxWorkspaceID() + 1
	return e.popMonitorAbsolute(ctx, snap, record, destination, &nextID)
}

// popMonitorAbsolute does the work of PopMonitorAbsolute, drawing fresh
// workspace ids from nextID so several monitors restored from one snapshot
// never share a freshly allocated workspace
func (e *StashEngine) popMonitorAbsolute(
	ctx context.Context,
	snap *domain.Snapshot,
	record domain.StashedMonitor,
	destination domain.MonitorID,
	nextID *domain.WorkspaceID,
) (domain.BatchResult, error) {
	if !snap.HasMonitor(destination) {
		return domain.BatchResult{}, fmt.Errorf("%w: %d", domain.ErrMonitorNotFound, destination)
	}

	existing := withoutHolding(snap.WorkspacesOn(destination), record)
	mapping := RemapLayout(record.Layout, existing, *nextID)
	if fresh := len(record.Layout) - len(existing); fresh > 0 {
		*nextID += domain.WorkspaceID(fresh)
	}
	logging.Logger.Info("Popping monitor (absolute)",
		"original_monitor", record.OriginalMonitor,
		"destination", destination,
		"layout", record.Layout,
		"existing", existing,
		"mapping", fmt.Sprint(mapping))

	var batch domain.BatchResult
	var errs []error
	for _, workspace := range record.Workspaces {
		mapped, ok := mapping[workspace.OriginalWorkspace]
		if !ok {
			mapped = workspace.OriginalWorkspace
		}
		workspaceBatch, err := e.PopWorkspace(ctx, snap, workspace, &mapped)
		batch.Merge(workspaceBatch)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return batch, errors.Join(errs...)
	}
	return batch, nil
}

// withoutHolding drops the record's holding workspaces from existing so a
// stashed window is never restored into the workspace it is parked in
func withoutHolding(existing []domain.WorkspaceID, record domain.StashedMonitor) []domain.WorkspaceID {
	return slices.DeleteFunc(existing, func(id domain.WorkspaceID) bool {
		return slices.ContainsFunc(record.Workspaces, func(w domain.StashedWorkspace) bool {
			return w.StashLocation == id
		})
	})
}

// PopMonitorRelative restores every stashed workspace to its original id,
// ignoring the current monitor topology
func (e *StashEngine) PopMonitorRelative(
	ctx context.Context,
	snap *domain.Snapshot,
	record domain.StashedMonitor,
) (domain.BatchResult, error) {
	logging.Logger.Info("Popping monitor (relative)",
		"original_monitor", record.OriginalMonitor,
		"workspaces", len(record.Workspaces))

	var batch domain.BatchResult
	var errs []error
	for _, workspace := range record.Workspaces {
		workspaceBatch, err := e.PopWorkspace(ctx, snap, workspace, nil)
		batch.Merge(workspaceBatch)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return batch, errors.Join(errs...)
	}
	return batch, nil
}
