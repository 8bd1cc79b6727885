package config

import (
	"encoding/json"
	"fmt"
	"os"

	"hyprstash/internal/domain"
	"hyprstash/internal/paths"
)

// Settings represents the structure of <config dir>/settings.json
type Settings struct {
	Debug                *bool  `json:"debug,omitempty"`
	History              *bool  `json:"history,omitempty"`
	MaxLogFiles          *int   `json:"max_log_files,omitempty"`
	OnConflict           string `json:"on_conflict,omitempty"`
	RecordFocusedMonitor *bool  `json:"record_focused_monitor,omitempty"`
	StashDir             string `json:"stash_dir,omitempty"`
	StashLocation        *int   `json:"stash_location,omitempty"`
}

// ConflictPolicy returns the configured policy, defaulting to reject
func (s *Settings) ConflictPolicy() (domain.ConflictPolicy, error) {
	return domain.ParseConflictPolicy(s.OnConflict)
}

// HistoryEnabled reports whether operations should be recorded (default true)
func (s *Settings) HistoryEnabled() bool {
	return s.History == nil || *s.History
}

// RecordsFocusedMonitor reports whether monitor stashes record the focused
// monitor as their origin (default true)
func (s *Settings) RecordsFocusedMonitor() bool {
	return s.RecordFocusedMonitor == nil || *s.RecordFocusedMonitor
}

// LoadSettings loads settings from the settings file.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if _, err := settings.ConflictPolicy(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.StashDir != "" {
		settings.StashDir = paths.ExpandPath(settings.StashDir)
	}

	return &settings, nil
}
