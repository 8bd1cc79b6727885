package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - headers
)

// Stash kind colors
const (
	ColorEverything Color = "205" // Pink
	ColorMonitor    Color = "141" // Purple
	ColorWorkspace  Color = "33"  // Blue
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "2"   // Green
	ColorWarning   Color = "3"   // Yellow
)
