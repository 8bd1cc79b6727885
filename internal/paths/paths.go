package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "hyprstash"

// GetHome returns HYPRSTASH_HOME expanded, or "" when it is not set
func GetHome() string {
	home := os.Getenv("HYPRSTASH_HOME")
	if home == "" {
		return ""
	}
	return ExpandPath(home)
}

// GetConfigDir returns $HYPRSTASH_HOME or $XDG_CONFIG_HOME/hyprstash
func GetConfigDir() string {
	if home := GetHome(); home != "" {
		return home
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetStateDir returns $HYPRSTASH_HOME or $XDG_STATE_HOME/hyprstash
func GetStateDir() string {
	if home := GetHome(); home != "" {
		return home
	}
	return filepath.Join(xdg.StateHome, appName)
}

// GetSettingsPath returns <config dir>/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetConfigDir(), "settings.json")
}

// GetHistoryDBPath returns <state dir>/history.db
func GetHistoryDBPath() string {
	return filepath.Join(GetStateDir(), "history.db")
}

// GetLogDir returns <state dir>/logs
func GetLogDir() string {
	return filepath.Join(GetStateDir(), "logs")
}

// GetStashDir returns the directory holding one file per stash.
// Window addresses only live as long as the compositor session, so the
// default is the per-user runtime dir.
func GetStashDir() string {
	if dir := os.Getenv("HYPRSTASH_STASH_DIR"); dir != "" {
		return ExpandPath(dir)
	}
	if home := GetHome(); home != "" {
		return filepath.Join(home, "stashes")
	}
	return filepath.Join(xdg.RuntimeDir, appName)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
