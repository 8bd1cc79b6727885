package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"hyprstash/internal/domain"
	"hyprstash/internal/logging"
	"hyprstash/internal/services"
	"hyprstash/internal/theme"
)

// PopCmd restores a stash of any kind with the default options of its kind
type PopCmd struct {
	Name string `arg:"" optional:"" help:"Name of the stash (prompted when omitted)"`
}

// Run executes the pop command
func (p *PopCmd) Run(cli *CLI) error {
	ctx := context.Background()

	name := p.Name
	if name == "" {
		selected, err := selectStash(ctx, cli.Container.StashService)
		if err != nil {
			return err
		}
		name = selected
	}

	result, err := cli.Container.StashService.Pop(ctx, name)
	if err != nil {
		return err
	}
	printPopResult(result)
	return nil
}

// PopWorkspaceCmd restores a workspace stash
type PopWorkspaceCmd struct {
	Name   string `arg:"" help:"Name of the stash"`
	Target *int   `help:"Workspace to restore into (default: the original workspace)" short:"t"`
}

// Run executes the pop-workspace command
func (p *PopWorkspaceCmd) Run(cli *CLI) error {
	var target *domain.WorkspaceID
	if p.Target != nil {
		id := domain.WorkspaceID(*p.Target)
		target = &id
	}

	result, err := cli.Container.StashService.PopWorkspace(context.Background(), p.Name, target)
	if err != nil {
		return err
	}
	printPopResult(result)
	return nil
}

// PopMonitorCmd restores a monitor stash
type PopMonitorCmd struct {
	Name     string `arg:"" help:"Name of the stash"`
	Relative bool   `help:"Restore the original workspace ids instead of remapping onto the target monitor" short:"r"`
	Target   *int   `help:"Monitor id to restore onto (default: the original monitor)" short:"t"`
}

// Run executes the pop-monitor command
func (p *PopMonitorCmd) Run(cli *CLI) error {
	var target *domain.MonitorID
	if p.Target != nil {
		id := domain.MonitorID(*p.Target)
		target = &id
	}
	if p.Relative && target != nil {
		logging.Logger.Warn("Target monitor ignored for relative pop", "target", *target)
	}

	result, err := cli.Container.StashService.PopMonitor(context.Background(), p.Name, target, p.Relative)
	if err != nil {
		return err
	}
	printPopResult(result)
	return nil
}

// PopSessionCmd restores a full session stash
type PopSessionCmd struct {
	Name              string `arg:"" help:"Name of the stash"`
	NoMissingMonitors bool   `help:"Fail without moving anything when a stashed monitor is gone"`
	Relative          bool   `help:"Restore the original workspace ids on every monitor" short:"r"`
}

// Run executes the pop-session command
func (p *PopSessionCmd) Run(cli *CLI) error {
	result, err := cli.Container.StashService.PopSession(context.Background(), p.Name, services.PopSessionOptions{
		NoMissingMonitors: p.NoMissingMonitors,
		Relative:          p.Relative,
	})
	if err != nil {
		return err
	}
	printPopResult(result)
	return nil
}

// selectStash asks the user to pick one of the persisted stashes
func selectStash(ctx context.Context, service *services.StashService) (string, error) {
	if !interactive() {
		return "", errors.New("stash name is required when not running in a terminal")
	}

	summaries, err := service.List(ctx)
	if err != nil {
		return "", err
	}

	options := make([]huh.Option[string], 0, len(summaries))
	for _, summary := range summaries {
		if summary.Err != nil {
			continue
		}
		label := fmt.Sprintf("%s (%s, %d windows)", summary.Name, summary.Kind, summary.Windows)
		options = append(options, huh.NewOption(label, summary.Name))
	}
	if len(options) == 0 {
		return "", domain.ErrStashNotFound
	}

	var name string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pop which stash?").
				Options(options...).
				Value(&name),
		),
	).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Info("User cancelled stash selection")
		}
		return "", err
	}

	logging.Logger.Debug("Stash selected", "name", name)
	return name, nil
}

// interactive reports whether prompts can be shown
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printPopResult(result *services.PopResult) {
	logging.Logger.Info("Pop command completed", "name", result.Name, "moved", len(result.Batch.Succeeded))

	fmt.Printf("%s %s stash %s (%d windows moved)\n",
		theme.SuccessStyle.Render("Popped"),
		theme.KindStyle(result.Kind).Render(string(result.Kind)),
		theme.HighlightStyle.Render(result.Name),
		len(result.Batch.Succeeded))
}
