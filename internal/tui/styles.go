package tui

import "github.com/charmbracelet/lipgloss"

// Colors - only include those that are actually used
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	addColor     = lipgloss.Color("#10B981") // Green
	deleteColor  = lipgloss.Color("#EF4444") // Red
	changeColor  = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#6B7280") // Gray
)

// Styles
var (
	// Popup frame
	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1)

	// Hunk lines
	addedStyle = lipgloss.NewStyle().
			Foreground(addColor)

	removedStyle = lipgloss.NewStyle().
			Foreground(deleteColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(changeColor).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// Intraline emphasis for changed spans
	emphAddStyle = lipgloss.NewStyle().
			Foreground(addColor).
			Bold(true).
			Underline(true)

	emphDelStyle = lipgloss.NewStyle().
			Foreground(deleteColor).
			Bold(true).
			Strikethrough(true)

	// Help bar
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(1, 0, 0, 0)
)

// bodyHighlights maps layout highlight group names to body styles.
var bodyHighlights = map[string]lipgloss.Style{
	"add":    addedStyle,
	"delete": removedStyle,
	"change": headerStyle,
}

// highlightStyle resolves a highlight group name; empty or unknown names get
// the normal body style.
func highlightStyle(name string) lipgloss.Style {
	if s, ok := bodyHighlights[name]; ok {
		return s
	}
	return normalStyle
}
