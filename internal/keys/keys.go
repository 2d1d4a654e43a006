package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Search
	Search key.Binding

	// Help toggle
	Help key.Binding

	// Screens
	Dashboard     key.Binding
	Requests      key.Binding
	Notifications key.Binding

	// Actions
	NewRequest key.Binding
	Comment    key.Binding
	Feedback   key.Binding
	Status     key.Binding

	// Notification actions
	MarkRead    key.Binding
	MarkAllRead key.Binding
	ClearAll    key.Binding

	// List filters and paging
	FilterStatus   key.Binding
	FilterPriority key.Binding
	FilterDate     key.Binding
	NextPage       key.Binding
	PrevPage       key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open detail"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "dashboard"),
		),
		Requests: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "requests"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inbox"),
		),
		NewRequest: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new request"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Feedback: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feedback"),
		),
		Status: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "change status"),
		),
		MarkRead: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark read"),
		),
		MarkAllRead: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "mark all read"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear all"),
		),
		FilterStatus: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "cycle status"),
		),
		FilterPriority: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "cycle priority"),
		),
		FilterDate: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "cycle date range"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev page"),
		),
	}
}
