package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"hyprstash/internal/config"
	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version       kong.VersionFlag `help:"Show version information"`
	Debug         bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile     string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles   int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	StashLocation int              `help:"Workspace used to hold stashed windows" default:"8" env:"HYPRSTASH_STASH_LOCATION"`

	StashWorkspace  StashWorkspaceCmd  `cmd:"stash-workspace" help:"Stash the windows of a workspace"`
	StashMonitor    StashMonitorCmd    `cmd:"stash-monitor" help:"Stash every workspace of a monitor"`
	StashEverything StashEverythingCmd `cmd:"stash-everything" help:"Stash every window of the session"`
	Pop             PopCmd             `cmd:"pop" help:"Restore a stash of any kind"`
	PopWorkspace    PopWorkspaceCmd    `cmd:"pop-workspace" help:"Restore a workspace stash"`
	PopMonitor      PopMonitorCmd      `cmd:"pop-monitor" help:"Restore a monitor stash"`
	PopSession      PopSessionCmd      `cmd:"pop-session" help:"Restore a full session stash"`
	List            ListCmd            `cmd:"list" help:"List stashes" aliases:"ls"`
	Show            ShowCmd            `cmd:"show" help:"Show the contents of a stash"`
	Clear           ClearCmd           `cmd:"clear" help:"Forget one stash or all of them (windows are not moved)"`
	Monitors        MonitorsCmd        `cmd:"monitors" help:"List monitors known to Hyprland"`
	History         HistoryCmd         `cmd:"history" help:"Show recent stash operations"`
	Settings        SettingsCmd        `cmd:"settings" help:"Show settings file location and available options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Holding returns the holding workspace for stash commands
func (c *CLI) Holding() domain.WorkspaceID {
	return domain.WorkspaceID(c.StashLocation)
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and the env var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("HYPRSTASH_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("HYPRSTASH_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.StashLocation == int(domain.DefaultStashLocation) {
			if _, hasEnv := os.LookupEnv("HYPRSTASH_STASH_LOCATION"); !hasEnv {
				if c.settings.StashLocation != nil {
					c.StashLocation = *c.settings.StashLocation
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Container after logging, so adapters log through the configured handler
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("CLI initialized",
		"stash_location", c.StashLocation,
		"max_log_files", c.MaxLogFiles)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
