package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"hyprstash/internal/theme"
)

// MonitorsCmd lists the monitors Hyprland knows about, with the ids the
// --monitor and --target flags expect
type MonitorsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type monitorItem struct {
	ActiveWorkspace int    `json:"active_workspace"`
	Description     string `json:"description"`
	Focused         bool   `json:"focused"`
	ID              int    `json:"id"`
	Name            string `json:"name"`
}

// Run executes the monitors command
func (m *MonitorsCmd) Run(cli *CLI) error {
	monitors, err := cli.Container.StashService.Monitors(context.Background())
	if err != nil {
		return err
	}

	if m.Format == "json" {
		items := make([]monitorItem, 0, len(monitors))
		for _, monitor := range monitors {
			items = append(items, monitorItem{
				ActiveWorkspace: int(monitor.ActiveWorkspace),
				Description:     monitor.Description,
				Focused:         monitor.Focused,
				ID:              int(monitor.ID),
				Name:            monitor.Name,
			})
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	t := theme.NewTable("ID", "NAME", "WORKSPACE", "FOCUSED", "DESCRIPTION")
	for _, monitor := range monitors {
		focused := ""
		if monitor.Focused {
			focused = theme.SuccessStyle.Render("*")
		}
		t.Row(fmt.Sprint(monitor.ID), monitor.Name, fmt.Sprint(monitor.ActiveWorkspace), focused, monitor.Description)
	}
	fmt.Println(t)
	return nil
}
