package ports

import (
	"context"

	"hyprstash/internal/domain"
)

// StashReader reads persisted stashes
type StashReader interface {
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) (domain.StashedInstance, error)
}

// StashWriter writes and deletes persisted stashes
type StashWriter interface {
	Delete(ctx context.Context, name string) error
	DeleteAll(ctx context.Context) error
	Write(ctx context.Context, name string, instance domain.StashedInstance) error
}

// StashRepository is the composite interface
type StashRepository interface {
	StashReader
	StashWriter
}
