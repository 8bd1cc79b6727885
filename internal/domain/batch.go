package domain

import (
	"fmt"
	"strings"
)

// DispatchFailure is one window move the compositor refused or could not perform
type DispatchFailure struct {
	Address Address
	Err     error
	Target  WorkspaceID
}

func (f DispatchFailure) Error() string {
	return fmt.Sprintf("move %s to workspace %d: %v", f.Address, f.Target, f.Err)
}

func (f DispatchFailure) Unwrap() error { return f.Err }

// BatchResult separates the windows that moved from the ones that did not.
// Callers decide whether failures are informational or fatal.
type BatchResult struct {
	Failed    []DispatchFailure
	Succeeded []Address
}

// Merge appends another batch to this one
func (b *BatchResult) Merge(other BatchResult) {
	b.Succeeded = append(b.Succeeded, other.Succeeded...)
	b.Failed = append(b.Failed, other.Failed...)
}

// HasFailures reports whether any move failed
func (b BatchResult) HasFailures() bool {
	return len(b.Failed) > 0
}

// Err returns a *DispatchError aggregating every failure, or nil
func (b BatchResult) Err() error {
	if !b.HasFailures() {
		return nil
	}
	return &DispatchError{Failures: append([]DispatchFailure(nil), b.Failed...)}
}

// DispatchError aggregates the failures of a batch of window moves
type DispatchError struct {
	Failures []DispatchFailure
}

func (e *DispatchError) Error() string {
	if len(e.Failures) == 1 {
		return fmt.Sprintf("%s: %s", ErrDispatch, e.Failures[0].Error())
	}
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("%s: %d moves failed: %s", ErrDispatch, len(e.Failures), strings.Join(parts, "; "))
}

// Is lets errors.Is(err, ErrDispatch) match an aggregated dispatch error
func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatch
}

// Unwrap exposes the individual failures to errors.Is and errors.As
func (e *DispatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// ConflictPolicy decides what a stash does when the name is already taken
type ConflictPolicy string

const (
	ConflictOverwrite ConflictPolicy = "overwrite"
	ConflictReject    ConflictPolicy = "reject"
)

// ParseConflictPolicy parses a policy name, defaulting to reject for ""
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ConflictReject:
		return ConflictReject, nil
	case ConflictOverwrite:
		return ConflictOverwrite, nil
	}
	return "", fmt.Errorf("unknown conflict policy %q (valid: reject, overwrite)", s)
}
