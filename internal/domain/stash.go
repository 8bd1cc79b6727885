package domain

import (
	"fmt"
	"unicode"
)

// StashKind names the variant held by a StashedInstance
type StashKind string

const (
	KindEverything StashKind = "everything"
	KindMonitor    StashKind = "monitor"
	KindWorkspace  StashKind = "workspace"
)

// DefaultStashLocation is the holding workspace used when none is configured
const DefaultStashLocation WorkspaceID = 8

// StashedWorkspace records the windows of one workspace moved to the holding workspace
type StashedWorkspace struct {
	OriginalWorkspace WorkspaceID `json:"original_workspace"`
	StashLocation     WorkspaceID `json:"stash_location"`
	WindowAddresses   []Address   `json:"window_addresses"`
}

// StashedMonitor records every workspace of a monitor. Layout and Workspaces
// correspond by position.
type StashedMonitor struct {
	Layout          []WorkspaceID      `json:"layout"`
	OriginalMonitor MonitorID          `json:"original_monitor"`
	Workspaces      []StashedWorkspace `json:"workspaces"`
}

// StashedFullSession records every monitor of the session
type StashedFullSession struct {
	Monitors      []StashedMonitor `json:"monitors"`
	StashLocation WorkspaceID      `json:"stash_location"`
}

// StashedInstance is the unit of persistence. Exactly one variant is set; on
// disk it serializes as {"Workspace": {...}}, {"Monitor": {...}} or {"Everything": {...}}.
type StashedInstance struct {
	Everything *StashedFullSession `json:"Everything,omitempty"`
	Monitor    *StashedMonitor     `json:"Monitor,omitempty"`
	Workspace  *StashedWorkspace   `json:"Workspace,omitempty"`
}

// NewWorkspaceInstance wraps a stashed workspace
func NewWorkspaceInstance(w StashedWorkspace) StashedInstance {
	return StashedInstance{Workspace: &w}
}

// NewMonitorInstance wraps a stashed monitor
func NewMonitorInstance(m StashedMonitor) StashedInstance {
	return StashedInstance{Monitor: &m}
}

// NewEverythingInstance wraps a stashed session
func NewEverythingInstance(s StashedFullSession) StashedInstance {
	return StashedInstance{Everything: &s}
}

// Kind returns the variant held by the instance
func (i StashedInstance) Kind() StashKind {
	switch {
	case i.Workspace != nil:
		return KindWorkspace
	case i.Monitor != nil:
		return KindMonitor
	case i.Everything != nil:
		return KindEverything
	}
	return ""
}

// Validate checks that exactly one variant is set
func (i StashedInstance) Validate() error {
	set := 0
	if i.Workspace != nil {
		set++
	}
	if i.Monitor != nil {
		set++
	}
	if i.Everything != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("stash record must hold exactly one variant, found %d", set)
	}
	if i.Monitor != nil && len(i.Monitor.Layout) != len(i.Monitor.Workspaces) {
		return fmt.Errorf("monitor stash layout has %d entries for %d workspaces",
			len(i.Monitor.Layout), len(i.Monitor.Workspaces))
	}
	return nil
}

// WindowCount returns the number of window addresses recorded in the instance
func (i StashedInstance) WindowCount() int {
	switch {
	case i.Workspace != nil:
		return len(i.Workspace.WindowAddresses)
	case i.Monitor != nil:
		return i.Monitor.WindowCount()
	case i.Everything != nil:
		count := 0
		for _, m := range i.Everything.Monitors {
			count += m.WindowCount()
		}
		return count
	}
	return 0
}

// WindowCount returns the number of window addresses recorded for the monitor
func (m StashedMonitor) WindowCount() int {
	count := 0
	for _, w := range m.Workspaces {
		count += len(w.WindowAddresses)
	}
	return count
}

// isAlphanumeric matches the Unicode Alphabetic and Numeric properties,
// which include combining vowel signs such as the one in "कि"
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// ValidateStashName accepts only non-empty names made of letters and digits,
// so a name can never escape the stash directory.
func ValidateStashName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, r := range name {
		if !isAlphanumeric(r) {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}
