package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hyprstash/internal/domain"
	"hyprstash/internal/theme"
)

// ShowCmd prints the record stored under a stash name
type ShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" help:"Name of the stash to show"`
}

// Run executes the show command
func (s *ShowCmd) Run(cli *CLI) error {
	instance, err := cli.Container.StashService.Show(context.Background(), s.Name)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(instance, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(theme.TitleStyle.Render("Stash " + s.Name))
	printField("Kind", theme.KindStyle(instance.Kind()).Render(string(instance.Kind())))
	printField("Windows", fmt.Sprint(instance.WindowCount()))

	switch instance.Kind() {
	case domain.KindWorkspace:
		printField("Holding", fmt.Sprint(instance.Workspace.StashLocation))
		printWorkspace("", *instance.Workspace)
	case domain.KindMonitor:
		printMonitor("", *instance.Monitor)
	case domain.KindEverything:
		printField("Holding", fmt.Sprint(instance.Everything.StashLocation))
		for _, monitor := range instance.Everything.Monitors {
			printMonitor("  ", monitor)
		}
	}
	return nil
}

func printField(label, value string) {
	fmt.Println(theme.LabelStyle.Render(label+":") + value)
}

func printMonitor(indent string, monitor domain.StashedMonitor) {
	layout := make([]string, len(monitor.Layout))
	for i, id := range monitor.Layout {
		layout[i] = fmt.Sprint(id)
	}
	fmt.Printf("%s%s %d  %s\n", indent,
		theme.HighlightStyle.Render("Monitor"),
		monitor.OriginalMonitor,
		theme.MutedStyle.Render("layout ["+strings.Join(layout, ", ")+"]"))
	for _, workspace := range monitor.Workspaces {
		printWorkspace(indent+"  ", workspace)
	}
}

func printWorkspace(indent string, workspace domain.StashedWorkspace) {
	addresses := make([]string, len(workspace.WindowAddresses))
	for i, address := range workspace.WindowAddresses {
		addresses[i] = string(address)
	}
	fmt.Printf("%s%s %d  %s\n", indent,
		theme.NormalStyle.Render("Workspace"),
		workspace.OriginalWorkspace,
		theme.MutedStyle.Render(strings.Join(addresses, " ")))
}
