package services

import "hyprstash/internal/domain"

// StashParams contains the parameters shared by every stash operation
type StashParams struct {
	// Force overwrites an existing stash regardless of the conflict policy
	Force   bool
	Holding domain.WorkspaceID
	Name    string
}

// StashResult contains the result of a stash operation. Batch failures are
// informational: the stash was written anyway.
type StashResult struct {
	Batch    domain.BatchResult
	Instance domain.StashedInstance
	Name     string
}

// PopResult contains the result of a successful pop
type PopResult struct {
	Batch domain.BatchResult
	Kind  domain.StashKind
	Name  string
}

// StashSummary describes one persisted stash for listing
type StashSummary struct {
	// Err is set when the stash file could not be read
	Err     error
	Kind    domain.StashKind
	Name    string
	Windows int
}
