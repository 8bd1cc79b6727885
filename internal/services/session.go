package services

import (
	"context"
	"errors"
	"fmt"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
)

// PopSessionOptions controls how a full session is restored
type PopSessionOptions struct {
	// NoMissingMonitors refuses to restore anything when a stashed monitor is gone
	NoMissingMonitors bool
	// Relative restores every monitor to its original workspace ids
	Relative bool
}

// StashSession stashes every monitor in the snapshot. Each monitor record
// keeps its own id as origin so the session can be restored per monitor.
func (e *StashEngine) StashSession(
	ctx context.Context,
	snap *domain.Snapshot,
	holding domain.WorkspaceID,
) (domain.StashedFullSession, domain.BatchResult, error) {
	logging.Logger.Info("Stashing session", "monitors", len(snap.Monitors), "holding", holding)

	var batch domain.BatchResult
	monitors := make([]domain.StashedMonitor, 0, len(snap.Monitors))
	for _, m := range snap.Monitors {
		stashed, monitorBatch, err := e.stashMonitor(ctx, snap, m.ID, holding, false)
		if err != nil {
			return domain.StashedFullSession{}, batch, err
		}
		monitors = append(monitors, stashed)
		batch.Merge(monitorBatch)
	}

	return domain.StashedFullSession{
		Monitors:      monitors,
		StashLocation: holding,
	}, batch, nil
}

// MissingMonitors returns the distinct original monitors of the record that are
// absent from the snapshot, in record order
func MissingMonitors(snap *domain.Snapshot, record domain.StashedFullSession) []domain.MonitorID {
	seen := make(map[domain.MonitorID]bool)
	var missing []domain.MonitorID
	for _, m := range record.Monitors {
		if seen[m.OriginalMonitor] || snap.HasMonitor(m.OriginalMonitor) {
			continue
		}
		seen[m.OriginalMonitor] = true
		missing = append(missing, m.OriginalMonitor)
	}
	return missing
}

// PopSession restores a full session. Monitors that still exist are restored
// absolutely onto themselves; monitors that are gone fall back to relative
// placement. With NoMissingMonitors nothing moves unless every monitor exists.
func (e *StashEngine) PopSession(
	ctx context.Context,
	snap *domain.Snapshot,
	record domain.StashedFullSession,
	opts PopSessionOptions,
) (domain.BatchResult, error) {
	missing := MissingMonitors(snap, record)
	logging.Logger.Info("Popping session",
		"monitors", len(record.Monitors),
		"missing", missing,
		"relative", opts.Relative,
		"no_missing_monitors", opts.NoMissingMonitors)

	if opts.NoMissingMonitors && len(missing) > 0 {
		return domain.BatchResult{}, fmt.Errorf("%w: %d", domain.ErrMonitorNotFound, missing[0])
	}

	isMissing := make(map[domain.MonitorID]bool, len(missing))
	for _, id := range missing {
		isMissing[id] = true
	}

	nextID := snap.MaxWorkspaceID() + 1
	var batch domain.BatchResult
	var errs []error
	for _, monitor := range record.Monitors {
		var (
			monitorBatch domain.BatchResult
			err          error
		)
		if opts.Relative || isMissing[monitor.OriginalMonitor] {
			monitorBatch, err = e.PopMonitorRelative(ctx, snap, monitor)
		} else {
			monitorBatch, err = e.popMonitorAbsolute(ctx, snap, monitor, monitor.OriginalMonitor, &nextID)
		}
		batch.Merge(monitorBatch)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return batch, errors.Join(errs...)
	}
	return batch, nil
}
