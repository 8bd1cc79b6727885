package domain

// WorkspaceID identifies a Hyprland workspace
type WorkspaceID int

// MonitorID identifies a Hyprland monitor
type MonitorID int

// Address is the hex address Hyprland uses to identify a window (e.g. "0x55d1a2f3c0")
type Address string

// Monitor is a display surface as reported by the compositor
type Monitor struct {
	ActiveWorkspace WorkspaceID
	Description     string
	Focused         bool
	ID              MonitorID
	Name            string
}

// Workspace is a container of windows. Monitor is nil when the workspace is not
// assigned to any monitor.
type Workspace struct {
	ID      WorkspaceID
	Monitor *MonitorID
}

// OnMonitor reports whether the workspace is assigned to the given monitor
func (w Workspace) OnMonitor(id MonitorID) bool {
	return w.Monitor != nil && *w.Monitor == id
}

// Window is a mapped client window
type Window struct {
	Address   Address
	Workspace WorkspaceID
}

// Snapshot is a point-in-time view of the compositor, built once per invocation
type Snapshot struct {
	ActiveMonitor   MonitorID
	ActiveWorkspace WorkspaceID
	Monitors        []Monitor
	Windows         []Window
	Workspaces      []Workspace
}

// HasMonitor reports whether a monitor with the given id exists
func (s *Snapshot) HasMonitor(id MonitorID) bool {
	for _, m := range s.Monitors {
		if m.ID == id {
			return true
		}
	}
	return false
}

// WorkspacesOn returns the ids of the workspaces assigned to a monitor, in snapshot order
func (s *Snapshot) WorkspacesOn(id MonitorID) []WorkspaceID {
	var ids []WorkspaceID
	for _, w := range s.Workspaces {
		if w.OnMonitor(id) {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// WindowsOn returns the addresses of the windows on a workspace, in snapshot order
func (s *Snapshot) WindowsOn(id WorkspaceID) []Address {
	var addrs []Address
	for _, w := range s.Windows {
		if w.Workspace == id {
			addrs = append(addrs, w.Address)
		}
	}
	return addrs
}

// WindowLocations maps every window address to the workspace it currently lives on
func (s *Snapshot) WindowLocations() map[Address]WorkspaceID {
	locations := make(map[Address]WorkspaceID, len(s.Windows))
	for _, w := range s.Windows {
		locations[w.Address] = w.Workspace
	}
	return locations
}

// MaxWorkspaceID returns the largest workspace id in the snapshot, or zero when there are none
func (s *Snapshot) MaxWorkspaceID() WorkspaceID {
	var highest WorkspaceID
	for i, w := range s.Workspaces {
		if i == 0 || w.ID > highest {
			highest = w.ID
		}
	}
	return highest
}
