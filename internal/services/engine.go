package services

import (
	"context"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
	"hyprstash/internal/ports"
)

// StashEngine moves windows between their workspaces and the holding
// workspace. It never queries the compositor itself: every operation works
// against the snapshot it is given.
type StashEngine struct {
	dispatcher           ports.HyprlandDispatcher
	recordFocusedMonitor bool
}

// NewStashEngine creates a new StashEngine.
// When recordFocusedMonitor is set, monitor stashes record the focused monitor
// as their origin instead of the monitor being stashed.
func NewStashEngine(dispatcher ports.HyprlandDispatcher, recordFocusedMonitor bool) *StashEngine {
	return &StashEngine{
		dispatcher:           dispatcher,
		recordFocusedMonitor: recordFocusedMonitor,
	}
}

// moveWindows moves every window to target, one call at a time. A failed move
// never stops the rest of the batch.
func (e *StashEngine) moveWindows(ctx context.Context, addresses []domain.Address, target domain.WorkspaceID) domain.BatchResult {
	var batch domain.BatchResult
	for _, address := range addresses {
		if err := e.dispatcher.MoveWindowToWorkspace(ctx, address, target); err != nil {
			logging.Logger.Warn("Failed to move window",
				"address", address,
				"target", target,
				"error", err)
			batch.Failed = append(batch.Failed, domain.DispatchFailure{
				Address: address,
				Err:     err,
				Target:  target,
			})
			continue
		}
		batch.Succeeded = append(batch.Succeeded, address)
	}
	return batch
}
