package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"hyprstash/internal/services"
	"hyprstash/internal/theme"
)

// ListCmd lists persisted stashes
type ListCmd struct {
	Format string `help:"Output format: table, json or names" enum:"table,json,names" default:"table"`
}

type stashListItem struct {
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Name    string `json:"name"`
	Windows int    `json:"windows"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	summaries, err := cli.Container.StashService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list stashes: %w", err)
	}

	switch l.Format {
	case "json":
		return l.printJSON(summaries)
	case "names":
		for _, summary := range summaries {
			fmt.Println(summary.Name)
		}
		return nil
	}
	l.printTable(summaries)
	return nil
}

func (l *ListCmd) printJSON(summaries []services.StashSummary) error {
	items := make([]stashListItem, 0, len(summaries))
	for _, summary := range summaries {
		item := stashListItem{
			Kind:    string(summary.Kind),
			Name:    summary.Name,
			Windows: summary.Windows,
		}
		if summary.Err != nil {
			item.Error = summary.Err.Error()
		}
		items = append(items, item)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (l *ListCmd) printTable(summaries []services.StashSummary) {
	if len(summaries) == 0 {
		fmt.Println(theme.MutedStyle.Render("No stashes"))
		return
	}

	t := theme.NewTable("NAME", "KIND", "WINDOWS")
	for _, summary := range summaries {
		if summary.Err != nil {
			t.Row(summary.Name, theme.ErrorStyle.Render("unreadable"), "-")
			continue
		}
		t.Row(summary.Name,
			theme.KindStyle(summary.Kind).Render(string(summary.Kind)),
			strconv.Itoa(summary.Windows))
	}
	fmt.Println(t)
}
