package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"hyprstash/internal/domain"
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(18)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Outcome styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Table styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// KindStyle returns the style used to render a stash kind
func KindStyle(kind domain.StashKind) lipgloss.Style {
	switch kind {
	case domain.KindEverything:
		return lipgloss.NewStyle().Foreground(ColorEverything)
	case domain.KindMonitor:
		return lipgloss.NewStyle().Foreground(ColorMonitor)
	case domain.KindWorkspace:
		return lipgloss.NewStyle().Foreground(ColorWorkspace)
	}
	return MutedStyle
}

// NewTable creates a table with the shared header and border styles
func NewTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		})
}
