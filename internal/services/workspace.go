package services

import (
	"context"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
)

// StashWorkspace moves every window of source to holding. Move failures are
// reported in the batch, and the record still lists every selected window.
func (e *StashEngine) StashWorkspace(
	ctx context.Context,
	snap *domain.Snapshot,
	source domain.WorkspaceID,
	holding domain.WorkspaceID,
) (domain.StashedWorkspace, domain.BatchResult) {
	addresses := snap.WindowsOn(source)
	logging.Logger.Info("Stashing workspace",
		"workspace", source,
		"holding", holding,
		"windows", len(addresses))

	batch := e.moveWindows(ctx, addresses, holding)

	return domain.StashedWorkspace{
		OriginalWorkspace: source,
		StashLocation:     holding,
		WindowAddresses:   addresses,
	}, batch
}

// PopWorkspace moves the recorded windows that are still parked in the
// holding workspace to target, or to their original workspace when target is
// nil. Windows that were closed or moved elsewhere are skipped silently; any
// move failure fails the pop after the whole batch was attempted.
func (e *StashEngine) PopWorkspace(
	ctx context.Context,
	snap *domain.Snapshot,
	record domain.StashedWorkspace,
	target *domain.WorkspaceID,
) (domain.BatchResult, error) {
	destination := record.OriginalWorkspace
	if target != nil {
		destination = *target
	}

	restorable := restorableWindows(snap, record)
	logging.Logger.Info("Popping workspace",
		"original", record.OriginalWorkspace,
		"destination", destination,
		"recorded", len(record.WindowAddresses),
		"restorable", len(restorable))

	batch := e.moveWindows(ctx, restorable, destination)
	return batch, batch.Err()
}

// restorableWindows keeps the recorded addresses that still exist and still
// sit in the record's holding workspace, in record order
func restorableWindows(snap *domain.Snapshot, record domain.StashedWorkspace) []domain.Address {
	locations := snap.WindowLocations()

	var restorable []domain.Address
	for _, address := range record.WindowAddresses {
		workspace, ok := locations[address]
		if !ok {
			logging.Logger.Debug("Stashed window is gone", "address", address)
			continue
		}
		if workspace != record.StashLocation {
			logging.Logger.Debug("Stashed window left the holding workspace",
				"address", address,
				"workspace", workspace)
			continue
		}
		restorable = append(restorable, address)
	}
	return restorable
}
