package ports

import (
	"context"

	"hyprstash/internal/domain"
)

// HistoryRecorder persists a log of stash operations
type HistoryRecorder interface {
	Close() error
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	Record(ctx context.Context, entry domain.HistoryEntry) error
}
