package notifications

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contactflow/internal/keys"
	"contactflow/internal/model"
	"contactflow/internal/theme"
)

// LoadedMsg carries the user's notifications, newest first.
type LoadedMsg struct {
	Notifications []model.Notification
}

// MarkReadMsg asks for one notification to be marked read.
type MarkReadMsg struct {
	NotificationID string
}

// MarkAllReadMsg asks for every notification to be marked read.
type MarkAllReadMsg struct{}

// ClearAllMsg asks for the inbox to be emptied.
type ClearAllMsg struct{}

// Model is the notification inbox view.
type Model struct {
	items  []model.Notification
	cursor int
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a notification inbox model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// Update handles messages for the inbox.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.items = msg.Notifications
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.MarkRead), key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.items) {
				id := m.items[m.cursor].ID
				return m, func() tea.Msg { return MarkReadMsg{NotificationID: id} }
			}
		case key.Matches(msg, m.keys.MarkAllRead):
			return m, func() tea.Msg { return MarkAllReadMsg{} }
		case key.Matches(msg, m.keys.ClearAll):
			return m, func() tea.Msg { return ClearAllMsg{} }
		}
	}
	return m, nil
}

// View renders the inbox.
func (m Model) View() string {
	if len(m.items) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.ColorGray).
			Padding(2, 0).
			Render("No notifications.")
	}

	var rows []string
	for i, n := range m.items {
		title := n.Title
		if !n.Read {
			title = theme.UnreadStyle.Render("● " + title)
		}
		line := fmt.Sprintf("%s %s\n  %s %s",
			theme.NotificationStyle(n.Type).Render(n.Type),
			title,
			n.Message,
			theme.HelpStyle.Render(n.CreatedAt.Format("Jan 2 15:04")),
		)
		if i == m.cursor {
			rows = append(rows, theme.SelectedItemStyle.Render(line))
		} else {
			rows = append(rows, theme.ListItemStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize updates the inbox dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
