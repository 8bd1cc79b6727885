package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"hyprstash/internal/domain"
	"hyprstash/internal/ports"
)

var _ ports.HyprlandClient = (*fakeCompositor)(nil)

type move struct {
	Address domain.Address
	Target  domain.WorkspaceID
}

// fakeCompositor keeps a window table that dispatched moves actually update,
// so a snapshot taken after a move sees its effect
type fakeCompositor struct {
	mu         sync.Mutex
	failOn     map[domain.Address]error
	monitors   []domain.Monitor
	moves      []move
	windows    []domain.Window
	workspaces []domain.Workspace
}

func newFakeCompositor() *fakeCompositor {
	return &fakeCompositor{failOn: make(map[domain.Address]error)}
}

func (f *fakeCompositor) addMonitor(id domain.MonitorID, active domain.WorkspaceID, focused bool) *fakeCompositor {
	f.monitors = append(f.monitors, domain.Monitor{
		ActiveWorkspace: active,
		Focused:         focused,
		ID:              id,
		Name:            fmt.Sprintf("DP-%d", id),
	})
	return f
}

func (f *fakeCompositor) addWorkspace(id domain.WorkspaceID, monitor domain.MonitorID) *fakeCompositor {
	f.workspaces = append(f.workspaces, domain.Workspace{ID: id, Monitor: &monitor})
	return f
}

func (f *fakeCompositor) addWindow(address domain.Address, workspace domain.WorkspaceID) *fakeCompositor {
	f.windows = append(f.windows, domain.Window{Address: address, Workspace: workspace})
	return f
}

func (f *fakeCompositor) removeMonitor(id domain.MonitorID) {
	f.monitors = slices.DeleteFunc(f.monitors, func(m domain.Monitor) bool { return m.ID == id })
	f.workspaces = slices.DeleteFunc(f.workspaces, func(w domain.Workspace) bool { return w.OnMonitor(id) })
}

// removeWorkspace drops a workspace the way the compositor destroys an
// emptied workspace that is not visible
func (f *fakeCompositor) removeWorkspace(id domain.WorkspaceID) {
	f.workspaces = slices.DeleteFunc(f.workspaces, func(w domain.Workspace) bool { return w.ID == id })
}

func (f *fakeCompositor) focus(id domain.MonitorID) {
	for i := range f.monitors {
		f.monitors[i].Focused = f.monitors[i].ID == id
	}
}

func (f *fakeCompositor) setWorkspaces(workspaces ...domain.Workspace) {
	f.workspaces = workspaces
}

func (f *fakeCompositor) closeWindow(address domain.Address) {
	f.windows = slices.DeleteFunc(f.windows, func(w domain.Window) bool { return w.Address == address })
}

func (f *fakeCompositor) place(address domain.Address, workspace domain.WorkspaceID) {
	for i := range f.windows {
		if f.windows[i].Address == address {
			f.windows[i].Workspace = workspace
		}
	}
}

func (f *fakeCompositor) workspaceOf(address domain.Address) domain.WorkspaceID {
	for _, w := range f.windows {
		if w.Address == address {
			return w.Workspace
		}
	}
	return -1
}

func (f *fakeCompositor) resetMoves() {
	f.moves = nil
}

func (f *fakeCompositor) movedAddresses() []domain.Address {
	addrs := make([]domain.Address, 0, len(f.moves))
	for _, m := range f.moves {
		addrs = append(addrs, m.Address)
	}
	return addrs
}

func (f *fakeCompositor) Monitors(ctx context.Context) ([]domain.Monitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.monitors), nil
}

func (f *fakeCompositor) Windows(ctx context.Context) ([]domain.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.windows), nil
}

func (f *fakeCompositor) Workspaces(ctx context.Context) ([]domain.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.workspaces), nil
}

func (f *fakeCompositor) MoveWindowToWorkspace(ctx context.Context, address domain.Address, workspace domain.WorkspaceID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failOn[address]; ok {
		return err
	}
	for i := range f.windows {
		if f.windows[i].Address != address {
			continue
		}
		f.windows[i].Workspace = workspace
		f.moves = append(f.moves, move{Address: address, Target: workspace})
		f.ensureWorkspace(workspace)
		return nil
	}
	return fmt.Errorf("no such window %s", address)
}

// ensureWorkspace creates a missing target workspace on the focused monitor,
// the way the compositor does for silent moves
func (f *fakeCompositor) ensureWorkspace(id domain.WorkspaceID) {
	for _, w := range f.workspaces {
		if w.ID == id {
			return
		}
	}
	for _, m := range f.monitors {
		if m.Focused {
			monitor := m.ID
			f.workspaces = append(f.workspaces, domain.Workspace{ID: id, Monitor: &monitor})
			return
		}
	}
	f.workspaces = append(f.workspaces, domain.Workspace{ID: id})
}

func collect(t *testing.T, f *fakeCompositor) *domain.Snapshot {
	t.Helper()
	snap, err := NewSnapshotCollector(f).Collect(context.Background())
	require.NoError(t, err)
	return snap
}
