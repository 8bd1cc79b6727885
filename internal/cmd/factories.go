package cmd

import (
	"os"

	"hyprstash/internal/adapters/hyprland"
	adapterstorage "hyprstash/internal/adapters/storage"
	"hyprstash/internal/config"
	"hyprstash/internal/logging"
	"hyprstash/internal/paths"
	"hyprstash/internal/ports"
	"hyprstash/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	StashService *services.StashService

	// StashDir is the resolved stash directory
	StashDir string

	// Internal - for cleanup only
	history ports.HistoryRecorder
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	policy, err := settings.ConflictPolicy()
	if err != nil {
		return nil, err
	}

	stashDir := settings.StashDir
	if _, hasEnv := os.LookupEnv("HYPRSTASH_STASH_DIR"); hasEnv || stashDir == "" {
		stashDir = paths.GetStashDir()
	}

	// Create adapters
	client := hyprland.NewClient()
	stashRepo := adapterstorage.NewFileStashRepository(stashDir)

	// History is optional: a broken database must not block stashing
	var history ports.HistoryRecorder
	if settings.HistoryEnabled() {
		repo, err := adapterstorage.NewSQLiteHistoryRepository(paths.GetHistoryDBPath())
		if err != nil {
			logging.Logger.Warn("History disabled, failed to open database", "error", err)
		} else {
			history = repo
		}
	}

	// Create services
	stashService := services.NewStashService(client, stashRepo, history, services.StashServiceOptions{
		ConflictPolicy:       policy,
		RecordFocusedMonitor: settings.RecordsFocusedMonitor(),
	})

	logging.Logger.Debug("Container created",
		"stash_dir", stashDir,
		"history", history != nil,
		"on_conflict", policy)

	return &Container{
		StashDir:     stashDir,
		StashService: stashService,
		history:      history,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.history != nil {
		return c.history.Close()
	}
	return nil
}
