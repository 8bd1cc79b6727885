package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
	"hyprstash/internal/ports"
)

// FileStashRepository implements ports.StashRepository with one JSON file per
// stash, named exactly as the stash. No locking is performed: concurrent
// invocations writing the same name race.
type FileStashRepository struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.StashRepository = (*FileStashRepository)(nil)

// NewFileStashRepository creates a repository rooted at dir. The directory is
// created lazily on the first write.
func NewFileStashRepository(dir string) *FileStashRepository {
	return &FileStashRepository{dir: dir}
}

// stashPath validates the name before it is ever joined to the directory
func (r *FileStashRepository) stashPath(name string) (string, error) {
	if err := domain.ValidateStashName(name); err != nil {
		return "", err
	}
	return filepath.Join(r.dir, name), nil
}

// Write implements StashWriter.Write, replacing any existing stash with the same name
func (r *FileStashRepository) Write(ctx context.Context, name string, instance domain.StashedInstance) error {
	path, err := r.stashPath(name)
	if err != nil {
		return err
	}
	if err := instance.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return fmt.Errorf("failed to create stash directory: %w", err)
	}

	data, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("failed to marshal stash %s: %w", name, err)
	}

	// Write to a temp file and rename so a reader never sees a half-written stash.
	// The temp name contains a '.', so List never reports it.
	tmp, err := os.CreateTemp(r.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write stash %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write stash %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save stash %s: %w", name, err)
	}

	logging.Logger.Debug("Stash written", "name", name, "path", path, "kind", instance.Kind())
	return nil
}

// Read implements StashReader.Read
func (r *FileStashRepository) Read(ctx context.Context, name string) (domain.StashedInstance, error) {
	path, err := r.stashPath(name)
	if err != nil {
		return domain.StashedInstance{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.StashedInstance{}, fmt.Errorf("%w: %s", domain.ErrStashNotFound, name)
		}
		return domain.StashedInstance{}, fmt.Errorf("failed to read stash %s: %w", name, err)
	}

	var instance domain.StashedInstance
	if err := json.Unmarshal(data, &instance); err != nil {
		return domain.StashedInstance{}, fmt.Errorf("failed to parse stash %s: %w", name, err)
	}
	if err := instance.Validate(); err != nil {
		return domain.StashedInstance{}, fmt.Errorf("corrupt stash %s: %w", name, err)
	}

	return instance, nil
}

// Exists implements StashReader.Exists
func (r *FileStashRepository) Exists(ctx context.Context, name string) (bool, error) {
	path, err := r.stashPath(name)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat stash %s: %w", name, err)
	}
	return true, nil
}

// List implements StashReader.List. Names come back in lexical order.
func (r *FileStashRepository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list stashes: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || domain.ValidateStashName(entry.Name()) != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Delete implements StashWriter.Delete
func (r *FileStashRepository) Delete(ctx context.Context, name string) error {
	path, err := r.stashPath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrStashNotFound, name)
		}
		return fmt.Errorf("failed to delete stash %s: %w", name, err)
	}

	logging.Logger.Debug("Stash deleted", "name", name)
	return nil
}

// DeleteAll implements StashWriter.DeleteAll by removing and recreating the directory
func (r *FileStashRepository) DeleteAll(ctx context.Context) error {
	if err := os.RemoveAll(r.dir); err != nil {
		return fmt.Errorf("failed to remove stash directory: %w", err)
	}
	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return fmt.Errorf("failed to recreate stash directory: %w", err)
	}

	logging.Logger.Debug("All stashes deleted", "dir", r.dir)
	return nil
}
