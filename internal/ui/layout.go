package ui

import (
	"github.com/charmbracelet/lipgloss"

	"contactflow/internal/theme"
)

// frameRows is the number of rows taken by the header and status bar.
const frameRows = 2

// Layout sizes the header, content area, and status bar for the
// current terminal dimensions.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout for the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentWidth returns the width available to the active view.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the rows available to the active view.
func (l Layout) ContentHeight() int {
	h := l.Height - frameRows
	if h < 0 {
		h = 0
	}
	return h
}

// RenderHeader renders the top bar, title on the left and the signed-in
// identity on the right, padded to the full terminal width.
func (l Layout) RenderHeader(title, identity string) string {
	left := theme.HeaderStyle.Render(title)
	right := theme.HeaderStyle.Render(identity)

	pad := l.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}
	middle := theme.HeaderStyle.Padding(0).Width(pad).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right)
}

// RenderStatusBar renders the bottom bar with keyboard hints, padded to
// the full terminal width.
func (l Layout) RenderStatusBar(hints string) string {
	bar := theme.StatusBarStyle.Width(l.Width)
	if lipgloss.Width(hints) > l.Width-2 {
		bar = bar.Inline(true).MaxWidth(l.Width)
	}
	return bar.Render(hints)
}

// RenderWithFrame stacks the header, content area, and status bar. The
// content is pinned to the top of the space between the bars so the
// status bar stays on the last row.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	body := lipgloss.Place(
		l.Width, l.ContentHeight(),
		lipgloss.Left, lipgloss.Top,
		content,
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}
