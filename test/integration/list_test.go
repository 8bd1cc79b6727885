package integration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprstash/test/integration/harness"
)

func TestList(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	singleMonitor(t, env)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "stash-workspace", "work"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "stash-everything", "rest"))

	t.Run("json", func(t *testing.T) {
		result := harness.RunCommand(t, env, "list", "--format", "json")
		harness.AssertSuccess(t, result)

		var items []map[string]any
		harness.AssertValidJSON(t, result, &items)
		require.Len(t, items, 2)
		assert.Equal(t, "rest", items[0]["name"])
		assert.Equal(t, "everything", items[0]["kind"])
		assert.Equal(t, "work", items[1]["name"])
		assert.Equal(t, "workspace", items[1]["kind"])
		assert.EqualValues(t, 2, items[1]["windows"])
	})

	t.Run("table", func(t *testing.T) {
		result := harness.RunCommand(t, env, "list")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "work")
		harness.AssertStdoutContains(t, result, "rest")
	})
}

func TestList_WorksWithoutHyprland(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "list")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No stashes")
}

func TestStash_WithoutHyprlandFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "stash-workspace", "work")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "hyprland is not reachable")
}

func TestShow(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	singleMonitor(t, env)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "stash-workspace", "work"))

	result := harness.RunCommand(t, env, "show", "--format", "json", "work")

	harness.AssertSuccess(t, result)
	var record map[string]json.RawMessage
	harness.AssertValidJSON(t, result, &record)
	assert.Contains(t, record, "Workspace")

	missing := harness.RunCommand(t, env, "show", "ghost")
	harness.AssertFailure(t, missing)
	harness.AssertStderrContains(t, missing, "stash not found")
}

func TestClear(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	hypr := singleMonitor(t, env)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "stash-workspace", "--workspace", "1", "one"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "stash-workspace", "--workspace", "2", "two"))

	harness.AssertSuccess(t, harness.RunCommand(t, env, "clear", "one"))
	assert.Equal(t, 8, hypr.WorkspaceOf("0xa"), "clearing leaves windows where they are")

	list := harness.RunCommand(t, env, "list", "--format", "names")
	harness.AssertStdoutNotContains(t, list, "one")
	harness.AssertStdoutContains(t, list, "two")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "clear", "--yes"))
	list = harness.RunCommand(t, env, "list", "--format", "names")
	assert.Empty(t, list.Stdout)
}

func TestMonitors(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dualMonitor(t, env)

	result := harness.RunCommand(t, env, "monitors", "--format", "json")

	harness.AssertSuccess(t, result)
	var monitors []map[string]any
	harness.AssertValidJSON(t, result, &monitors)
	require.Len(t, monitors, 2)
	assert.Equal(t, "eDP-1", monitors[0]["name"])
	assert.Equal(t, true, monitors[0]["focused"])
}

func TestHistory(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	singleMonitor(t, env)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "stash-workspace", "work"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "pop", "work"))

	result := harness.RunCommand(t, env, "history")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "stash")
	harness.AssertStdoutContains(t, result, "pop")
	assert.FileExists(t, env.Home+"/history.db")
}

func TestHistory_Disabled(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"history": false}`)

	result := harness.RunCommand(t, env, "history")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "history is disabled")
}

func TestSettings(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+env.SettingsPath())
				harness.AssertStdoutContains(t, result, "on_conflict")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "--format", "json"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Contains(t, output, "settings_file")
				assert.Contains(t, output, "format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, env, result)
		})
	}
}
