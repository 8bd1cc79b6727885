package cmd

import (
	"context"
	"fmt"
	"os"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
	"hyprstash/internal/services"
	"hyprstash/internal/theme"
)

// StashWorkspaceCmd stashes the windows of one workspace
type StashWorkspaceCmd struct {
	Force     bool   `help:"Overwrite an existing stash with the same name" short:"f"`
	Name      string `arg:"" help:"Name of the stash (letters and digits)"`
	Workspace *int   `help:"Workspace to stash (default: focused workspace)" short:"w"`
}

// Run executes the stash-workspace command
func (s *StashWorkspaceCmd) Run(cli *CLI) error {
	var workspace *domain.WorkspaceID
	if s.Workspace != nil {
		id := domain.WorkspaceID(*s.Workspace)
		workspace = &id
	}

	result, err := cli.Container.StashService.StashWorkspace(context.Background(), stashParams(cli, s.Name, s.Force), workspace)
	if err != nil {
		return err
	}
	printStashResult(result)
	return nil
}

// StashMonitorCmd stashes every workspace of one monitor
type StashMonitorCmd struct {
	Force   bool   `help:"Overwrite an existing stash with the same name" short:"f"`
	Monitor *int   `help:"Monitor id to stash (default: focused monitor)" short:"m"`
	Name    string `arg:"" help:"Name of the stash (letters and digits)"`
}

// Run executes the stash-monitor command
func (s *StashMonitorCmd) Run(cli *CLI) error {
	var monitor *domain.MonitorID
	if s.Monitor != nil {
		id := domain.MonitorID(*s.Monitor)
		monitor = &id
	}

	result, err := cli.Container.StashService.StashMonitor(context.Background(), stashParams(cli, s.Name, s.Force), monitor)
	if err != nil {
		return err
	}
	printStashResult(result)
	return nil
}

// StashEverythingCmd stashes every monitor
type StashEverythingCmd struct {
	Force bool   `help:"Overwrite an existing stash with the same name" short:"f"`
	Name  string `arg:"" help:"Name of the stash (letters and digits)"`
}

// Run executes the stash-everything command
func (s *StashEverythingCmd) Run(cli *CLI) error {
	result, err := cli.Container.StashService.StashEverything(context.Background(), stashParams(cli, s.Name, s.Force))
	if err != nil {
		return err
	}
	printStashResult(result)
	return nil
}

func stashParams(cli *CLI, name string, force bool) services.StashParams {
	return services.StashParams{
		Force:   force,
		Holding: cli.Holding(),
		Name:    name,
	}
}

// printStashResult reports the saved stash. Dispatch failures are warnings:
// the stash was written and popping it restores whatever did move.
func printStashResult(result *services.StashResult) {
	for _, failure := range result.Batch.Failed {
		fmt.Fprintln(os.Stderr, theme.WarningStyle.Render("warning: "+failure.Error()))
	}

	logging.Logger.Info("Stash command completed",
		"name", result.Name,
		"moved", len(result.Batch.Succeeded),
		"failed", len(result.Batch.Failed))

	fmt.Printf("%s %s stash %s (%d windows)\n",
		theme.SuccessStyle.Render("Stashed"),
		theme.KindStyle(result.Instance.Kind()).Render(string(result.Instance.Kind())),
		theme.HighlightStyle.Render(result.Name),
		result.Instance.WindowCount())
}
