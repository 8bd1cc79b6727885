package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"hyprstash/internal/logging"
	"hyprstash/internal/theme"
)

// ClearCmd forgets stashes without moving any window
type ClearCmd struct {
	Name string `arg:"" optional:"" help:"Name of the stash to forget (default: all stashes)"`
	Yes  bool   `help:"Do not ask for confirmation when clearing every stash" short:"y"`
}

// Run executes the clear command
func (c *ClearCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing clear command", "name", c.Name, "yes", c.Yes)

	if c.Name == "" && !c.Yes && interactive() {
		confirmed, err := c.confirmClearAll()
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled clear")
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.StashService.Clear(context.Background(), c.Name); err != nil {
		return err
	}

	if c.Name == "" {
		fmt.Println(theme.SuccessStyle.Render("Cleared all stashes"))
	} else {
		fmt.Printf("%s %s\n", theme.SuccessStyle.Render("Cleared"), theme.HighlightStyle.Render(c.Name))
	}
	return nil
}

func (c *ClearCmd) confirmClearAll() (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Forget every stash?").
				Description("Stashed windows stay in the holding workspace.").
				Affirmative("Clear").
				Negative("Cancel").
				Value(&confirmed),
		),
	).Run()
	return confirmed, err
}
