package domain

import "time"

// Operation names a recorded stash operation
type Operation string

const (
	OperationClear Operation = "clear"
	OperationPop   Operation = "pop"
	OperationStash Operation = "stash"
)

// HistoryEntry is one stash, pop or clear performed by the tool
type HistoryEntry struct {
	CreatedAt time.Time
	Error     string
	Failures  int
	ID        string
	Kind      StashKind
	Name      string
	Operation Operation
	Windows   int
}
