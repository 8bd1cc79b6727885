package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own HYPRSTASH_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp HYPRSTASH_HOME.
// Without a fake Hyprland attached, the environment has no Hyprland instance.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out HYPRSTASH_* variables and the host's Hyprland instance.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"HYPRLAND_INSTANCE_SIGNATURE": true,
		"XDG_RUNTIME_DIR":             true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "HYPRSTASH_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"HYPRSTASH_HOME="+e.Home,
		"HYPRSTASH_DEBUG=",
	)
	if _, ok := e.extraEnv["HYPRLAND_INSTANCE_SIGNATURE"]; !ok {
		env = append(env, "HYPRLAND_INSTANCE_SIGNATURE=")
	}

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// StashDir returns the directory the CLI writes stash files to.
func (e *TestEnvironment) StashDir() string {
	return filepath.Join(e.Home, "stashes")
}

// SettingsPath returns the path of the settings file read by the CLI.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes a settings.json for the CLI to pick up.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
