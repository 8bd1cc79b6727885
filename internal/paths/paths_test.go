package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeOverridesEverything(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HYPRSTASH_HOME", home)
	t.Setenv("HYPRSTASH_STASH_DIR", "")

	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, "history.db"), GetHistoryDBPath())
	assert.Equal(t, filepath.Join(home, "logs"), GetLogDir())
	assert.Equal(t, filepath.Join(home, "stashes"), GetStashDir())
}

func TestStashDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HYPRSTASH_HOME", t.TempDir())
	t.Setenv("HYPRSTASH_STASH_DIR", dir)

	assert.Equal(t, dir, GetStashDir())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "stashes"), ExpandPath("~/stashes"))
	assert.Equal(t, "/tmp/x", ExpandPath("/tmp/x"))
}
