package cmd

import (
	"context"
	"fmt"

	"hyprstash/internal/theme"
)

// HistoryCmd shows recent stash operations
type HistoryCmd struct {
	Limit int `help:"Number of entries to show" default:"20" short:"n"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	entries, err := cli.Container.StashService.History(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println(theme.MutedStyle.Render("No history"))
		return nil
	}

	t := theme.NewTable("WHEN", "OPERATION", "NAME", "KIND", "WINDOWS", "FAILURES", "ERROR")
	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = theme.MutedStyle.Render("(all)")
		}
		failures := fmt.Sprint(entry.Failures)
		if entry.Failures > 0 {
			failures = theme.WarningStyle.Render(failures)
		}
		t.Row(
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(entry.Operation),
			name,
			theme.KindStyle(entry.Kind).Render(string(entry.Kind)),
			fmt.Sprint(entry.Windows),
			failures,
			theme.ErrorStyle.Render(entry.Error),
		)
	}
	fmt.Println(t)
	return nil
}
