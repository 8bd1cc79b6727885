package ports

import (
	"context"

	"hyprstash/internal/domain"
)

// HyprlandReader queries the compositor topology
type HyprlandReader interface {
	Monitors(ctx context.Context) ([]domain.Monitor, error)
	Windows(ctx context.Context) ([]domain.Window, error)
	Workspaces(ctx context.Context) ([]domain.Workspace, error)
}

// HyprlandDispatcher issues window commands
type HyprlandDispatcher interface {
	// MoveWindowToWorkspace moves a window without changing focus
	MoveWindowToWorkspace(ctx context.Context, address domain.Address, workspace domain.WorkspaceID) error
}

// HyprlandClient is the composite compositor interface
type HyprlandClient interface {
	HyprlandDispatcher
	HyprlandReader
}
