package theme

import "github.com/charmbracelet/lipgloss"

// ApplyDarkMode pins the adaptive colors to the dark or light variant
// instead of relying on terminal background detection. Used when the
// user has persisted an explicit preference.
func ApplyDarkMode(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#4DABF7", Light: "#1C7ED6"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#69DB7C", Light: "#2B8A3E"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFE066", Light: "#E67700"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF8787", Light: "#C92A2A"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFC078", Light: "#D9480F"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#DA77F2", Light: "#9C36B5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#ADB5BD", Light: "#868E96"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F1F3F5", Light: "#212529"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#343A40", Light: "#DEE2E6"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E9ECEF"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// CardStyle wraps a dashboard stat card or widget panel.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// DetailPanelStyle wraps the detail view content area.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ErrorStyle is used for inline error messages.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// UnreadStyle marks unread notifications.
var UnreadStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// StatusStyle returns a color-coded style for the given request status.
func StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case "pending":
		return base.Foreground(ColorYellow)
	case "in-progress":
		return base.Foreground(ColorBlue)
	case "completed":
		return base.Foreground(ColorGreen)
	case "cancelled":
		return base.Foreground(ColorGray)
	default:
		return base.Foreground(ColorGray)
	}
}

// PriorityStyle returns a color-coded style for the given priority label.
func PriorityStyle(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case "urgent":
		return base.Foreground(ColorRed)
	case "high":
		return base.Foreground(ColorOrange)
	case "medium":
		return base.Foreground(ColorYellow)
	case "low":
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// NotificationStyle returns a color-coded style for a notification type.
func NotificationStyle(typ string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch typ {
	case "request":
		return base.Foreground(ColorBlue)
	case "comment":
		return base.Foreground(ColorMagenta)
	case "feedback":
		return base.Foreground(ColorGreen)
	case "status":
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}
