package services

import (
	"context"
	"errors"
	"fmt"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
	"hyprstash/internal/ports"
)

// StashService runs the stash and pop commands end to end: it collects the
// snapshot, drives the engine, persists records and keeps the history
type StashService struct {
	client    ports.HyprlandClient
	collector *SnapshotCollector
	engine    *StashEngine
	history   ports.HistoryRecorder
	policy    domain.ConflictPolicy
	stashRepo ports.StashRepository
}

// StashServiceOptions configures a StashService
type StashServiceOptions struct {
	ConflictPolicy       domain.ConflictPolicy
	RecordFocusedMonitor bool
}

// NewStashService creates a new StashService. history may be nil to disable recording.
func NewStashService(
	client ports.HyprlandClient,
	stashRepo ports.StashRepository,
	history ports.HistoryRecorder,
	opts StashServiceOptions,
) *StashService {
	policy := opts.ConflictPolicy
	if policy == "" {
		policy = domain.ConflictReject
	}
	return &StashService{
		client:    client,
		collector: NewSnapshotCollector(client),
		engine:    NewStashEngine(client, opts.RecordFocusedMonitor),
		history:   history,
		policy:    policy,
		stashRepo: stashRepo,
	}
}

// StashWorkspace stashes one workspace, the focused one when workspace is nil
func (s *StashService) StashWorkspace(ctx context.Context, params StashParams, workspace *domain.WorkspaceID) (*StashResult, error) {
	return s.stash(ctx, params, func(snap *domain.Snapshot) (domain.StashedInstance, domain.BatchResult, error) {
		source := snap.ActiveWorkspace
		if workspace != nil {
			source = *workspace
		}
		stashed, batch := s.engine.StashWorkspace(ctx, snap, source, params.Holding)
		return domain.NewWorkspaceInstance(stashed), batch, nil
	})
}

// StashMonitor stashes every workspace of a monitor, the focused one when monitor is nil
func (s *StashService) StashMonitor(ctx context.Context, params StashParams, monitor *domain.MonitorID) (*StashResult, error) {
	return s.stash(ctx, params, func(snap *domain.Snapshot) (domain.StashedInstance, domain.BatchResult, error) {
		source := snap.ActiveMonitor
		if monitor != nil {
			source = *monitor
		}
		stashed, batch, err := s.engine.StashMonitor(ctx, snap, source, params.Holding)
		if err != nil {
			return domain.StashedInstance{}, batch, err
		}
		return domain.NewMonitorInstance(stashed), batch, nil
	})
}

// StashEverything stashes every monitor of the session
func (s *StashService) StashEverything(ctx context.Context, params StashParams) (*StashResult, error) {
	return s.stash(ctx, params, func(snap *domain.Snapshot) (domain.StashedInstance, domain.BatchResult, error) {
		stashed, batch, err := s.engine.StashSession(ctx, snap, params.Holding)
		if err != nil {
			return domain.StashedInstance{}, batch, err
		}
		return domain.NewEverythingInstance(stashed), batch, nil
	})
}

type stashFunc func(snap *domain.Snapshot) (domain.StashedInstance, domain.BatchResult, error)

// stash validates the name and the conflict policy before anything moves, then
// runs fn against a fresh snapshot and persists the record
func (s *StashService) stash(ctx context.Context, params StashParams, fn stashFunc) (*StashResult, error) {
	logging.Logger.Info("Stash requested", "name", params.Name, "holding", params.Holding, "force", params.Force)

	if err := domain.ValidateStashName(params.Name); err != nil {
		return nil, err
	}

	if !params.Force && s.policy == domain.ConflictReject {
		exists, err := s.stashRepo.Exists(ctx, params.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrStashExists, params.Name)
		}
	}

	snap, err := s.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	instance, batch, err := fn(snap)
	if err != nil {
		logging.Logger.Error("Stash failed", "name", params.Name, "error", err)
		s.record(ctx, domain.HistoryEntry{
			Error:     err.Error(),
			Failures:  len(batch.Failed),
			Name:      params.Name,
			Operation: domain.OperationStash,
		})
		return nil, err
	}

	if err := s.stashRepo.Write(ctx, params.Name, instance); err != nil {
		logging.Logger.Error("Failed to persist stash", "name", params.Name, "error", err)
		return nil, fmt.Errorf("failed to save stash %s: %w", params.Name, err)
	}

	logging.Logger.Info("Stash saved",
		"name", params.Name,
		"kind", instance.Kind(),
		"windows", instance.WindowCount(),
		"failures", len(batch.Failed))
	s.record(ctx, domain.HistoryEntry{
		Failures:  len(batch.Failed),
		Kind:      instance.Kind(),
		Name:      params.Name,
		Operation: domain.OperationStash,
		Windows:   instance.WindowCount(),
	})

	return &StashResult{
		Batch:    batch,
		Instance: instance,
		Name:     params.Name,
	}, nil
}

// PopWorkspace restores a workspace stash, to target when given
func (s *StashService) PopWorkspace(ctx context.Context, name string, target *domain.WorkspaceID) (*PopResult, error) {
	return s.pop(ctx, name, domain.KindWorkspace, func(snap *domain.Snapshot, instance domain.StashedInstance) (domain.BatchResult, error) {
		return s.engine.PopWorkspace(ctx, snap, *instance.Workspace, target)
	})
}

// PopMonitor restores a monitor stash, absolutely onto target (or the original
// monitor) unless relative is set
func (s *StashService) PopMonitor(ctx context.Context, name string, target *domain.MonitorID, relative bool) (*PopResult, error) {
	return s.pop(ctx, name, domain.KindMonitor, func(snap *domain.Snapshot, instance domain.StashedInstance) (domain.BatchResult, error) {
		if relative {
			return s.engine.PopMonitorRelative(ctx, snap, *instance.Monitor)
		}
		return s.engine.PopMonitorAbsolute(ctx, snap, *instance.Monitor, target)
	})
}

// PopSession restores a full session stash
func (s *StashService) PopSession(ctx context.Context, name string, opts PopSessionOptions) (*PopResult, error) {
	return s.pop(ctx, name, domain.KindEverything, func(snap *domain.Snapshot, instance domain.StashedInstance) (domain.BatchResult, error) {
		return s.engine.PopSession(ctx, snap, *instance.Everything, opts)
	})
}

// Pop restores any stash with the default options of its kind
func (s *StashService) Pop(ctx context.Context, name string) (*PopResult, error) {
	return s.pop(ctx, name, "", func(snap *domain.Snapshot, instance domain.StashedInstance) (domain.BatchResult, error) {
		switch instance.Kind() {
		case domain.KindWorkspace:
			return s.engine.PopWorkspace(ctx, snap, *instance.Workspace, nil)
		case domain.KindMonitor:
			return s.engine.PopMonitorAbsolute(ctx, snap, *instance.Monitor, nil)
		default:
			return s.engine.PopSession(ctx, snap, *instance.Everything, PopSessionOptions{})
		}
	})
}

type popFunc func(snap *domain.Snapshot, instance domain.StashedInstance) (domain.BatchResult, error)

// pop reads the stash, checks its kind (any kind when want is ""), restores it
// against a fresh snapshot and deletes it only when the restore succeeded. A
// failed pop keeps the record; retrying it only moves windows that are still
// parked in the holding workspace.
func (s *StashService) pop(ctx context.Context, name string, want domain.StashKind, fn popFunc) (*PopResult, error) {
	logging.Logger.Info("Pop requested", "name", name, "kind", want)

	instance, err := s.stashRepo.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	if want != "" && instance.Kind() != want {
		return nil, fmt.Errorf("%w: %s is a %s stash, not a %s stash",
			domain.ErrMismatchedStashType, name, instance.Kind(), want)
	}

	snap, err := s.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	batch, err := fn(snap, instance)
	entry := domain.HistoryEntry{
		Failures:  len(batch.Failed),
		Kind:      instance.Kind(),
		Name:      name,
		Operation: domain.OperationPop,
		Windows:   len(batch.Succeeded),
	}
	if err != nil {
		logging.Logger.Error("Pop failed, keeping stash", "name", name, "error", err)
		entry.Error = err.Error()
		s.record(ctx, entry)
		return nil, err
	}

	if err := s.stashRepo.Delete(ctx, name); err != nil && !errors.Is(err, domain.ErrStashNotFound) {
		return nil, fmt.Errorf("restored %s but failed to delete it: %w", name, err)
	}

	logging.Logger.Info("Pop completed", "name", name, "moved", len(batch.Succeeded))
	s.record(ctx, entry)

	return &PopResult{
		Batch: batch,
		Kind:  instance.Kind(),
		Name:  name,
	}, nil
}

// List summarizes every persisted stash
func (s *StashService) List(ctx context.Context) ([]StashSummary, error) {
	names, err := s.stashRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]StashSummary, 0, len(names))
	for _, name := range names {
		summary := StashSummary{Name: name}
		instance, err := s.stashRepo.Read(ctx, name)
		if err != nil {
			logging.Logger.Warn("Unreadable stash", "name", name, "error", err)
			summary.Err = err
		} else {
			summary.Kind = instance.Kind()
			summary.Windows = instance.WindowCount()
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Show returns the record stored under name
func (s *StashService) Show(ctx context.Context, name string) (domain.StashedInstance, error) {
	return s.stashRepo.Read(ctx, name)
}

// Clear removes one stash, or every stash when name is empty. Windows stay
// wherever they are.
func (s *StashService) Clear(ctx context.Context, name string) error {
	logging.Logger.Info("Clear requested", "name", name)

	var err error
	if name == "" {
		err = s.stashRepo.DeleteAll(ctx)
	} else {
		err = s.stashRepo.Delete(ctx, name)
	}
	if err != nil {
		return err
	}

	s.record(ctx, domain.HistoryEntry{
		Name:      name,
		Operation: domain.OperationClear,
	})
	return nil
}

// Monitors lists the monitors currently known to the compositor
func (s *StashService) Monitors(ctx context.Context) ([]domain.Monitor, error) {
	return s.client.Monitors(ctx)
}

// History returns the most recent operations, newest first
func (s *StashService) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, errors.New("history is disabled")
	}
	return s.history.List(ctx, limit)
}

// record writes a history entry. History is best effort and never fails an operation.
func (s *StashService) record(ctx context.Context, entry domain.HistoryEntry) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, entry); err != nil {
		logging.Logger.Warn("Failed to record history", "name", entry.Name, "operation", entry.Operation, "error", err)
	}
}
