package requests

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contactflow/internal/keys"
	"contactflow/internal/model"
	"contactflow/internal/theme"
	"contactflow/internal/views"
)

// LoadedMsg carries the full request list into the view.
type LoadedMsg struct {
	Requests []model.Request
}

// SelectedMsg is sent when the user opens a request's detail.
type SelectedMsg struct {
	RequestID string
}

// statusCycle and priorityCycle are the filter values cycled by the
// filter keys, starting from "everything".
var (
	statusCycle   = []string{"", model.StatusPending, model.StatusInProgress, model.StatusCompleted, model.StatusCancelled}
	priorityCycle = []string{"", model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent}
	dateCycle     = []string{"", views.RangeToday, views.RangeWeek, views.RangeMonth, views.RangeYear}
)

// Model is the paged, filterable request list.
type Model struct {
	all      []model.Request
	filtered []model.Request
	filter   views.Filter
	perPage  int
	clock    func() time.Time

	statusIdx   int
	priorityIdx int
	dateIdx     int

	cursor     int
	pager      paginator.Model
	searchMode bool
	search     textinput.Model
	keys       *keys.KeyMap

	width  int
	height int
}

// New creates a request list model. perPage must be positive.
func New(k *keys.KeyMap, perPage int, clock func() time.Time, width, height int) Model {
	if clock == nil {
		clock = time.Now
	}

	si := textinput.New()
	si.Placeholder = "search requests..."
	si.Prompt = "/ "
	si.Width = width - 4

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = perPage

	return Model{
		perPage: perPage,
		clock:   clock,
		pager:   p,
		search:  si,
		keys:    k,
		width:   width,
		height:  height,
	}
}

// Update handles messages for the request list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.all = msg.Requests
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.filter.Search = m.search.Value()
		m.refresh()
		return m, nil

	case "esc":
		m.searchMode = false
		m.search.Reset()
		m.filter.Search = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if r, ok := m.SelectedRequest(); ok {
			id := r.ID
			return m, func() tea.Msg { return SelectedMsg{RequestID: id} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.search.Reset()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.FilterStatus):
		m.statusIdx = (m.statusIdx + 1) % len(statusCycle)
		m.filter.Status = statusCycle[m.statusIdx]
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.FilterPriority):
		m.priorityIdx = (m.priorityIdx + 1) % len(priorityCycle)
		m.filter.Priority = priorityCycle[m.priorityIdx]
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.FilterDate):
		m.dateIdx = (m.dateIdx + 1) % len(dateCycle)
		m.filter.DateRange = dateCycle[m.dateIdx]
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.pager.NextPage()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.pager.PrevPage()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		window := m.window()
		if m.cursor < window.End-window.Start-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}
	return m, nil
}

// SelectedRequest returns the request under the cursor.
func (m Model) SelectedRequest() (*model.Request, bool) {
	window := m.window()
	idx := window.Start + m.cursor
	if idx < window.Start || idx >= window.End {
		return nil, false
	}
	return &m.filtered[idx], true
}

// refresh reapplies the filter and resets paging.
func (m *Model) refresh() {
	m.filtered = views.FilterRequests(m.all, m.filter, m.clock())
	m.pager.SetTotalPages(len(m.filtered))
	m.pager.Page = 0
	m.cursor = 0
}

func (m *Model) clampCursor() {
	window := m.window()
	if max := window.End - window.Start - 1; m.cursor > max {
		if max < 0 {
			max = 0
		}
		m.cursor = max
	}
}

func (m Model) window() views.Window {
	return views.Paginate(len(m.filtered), m.pager.Page+1, m.perPage)
}

// View renders the request list.
func (m Model) View() string {
	var rows []string

	if m.searchMode {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.search.View()))
	}

	window := m.window()
	if window.TotalPages == 0 {
		rows = append(rows, m.renderEmptyState())
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	for i, r := range m.filtered[window.Start:window.End] {
		line := fmt.Sprintf("%s %s %s %s",
			theme.StatusStyle(r.Status).Render(r.Status),
			theme.PriorityStyle(r.Priority).Render(r.Priority),
			r.Title,
			theme.HelpStyle.Render(r.CreatedAt.Format("2006-01-02")),
		)
		if i == m.cursor {
			rows = append(rows, theme.SelectedItemStyle.Render(line))
		} else {
			rows = append(rows, theme.ListItemStyle.Render(line))
		}
	}

	rows = append(rows, theme.HelpStyle.Render(
		fmt.Sprintf("page %d of %d (%d requests)", window.Page, window.TotalPages, len(m.filtered)),
	))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// FilterSummary describes the active filters for the status bar, empty
// when nothing is filtered.
func (m Model) FilterSummary() string {
	summary := ""
	add := func(label, value string) {
		if value == "" {
			return
		}
		if summary != "" {
			summary += " "
		}
		summary += label + ":" + value
	}
	add("status", m.filter.Status)
	add("priority", m.filter.Priority)
	add("date", m.filter.DateRange)
	add("search", m.filter.Search)
	return summary
}

func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.ColorGray).
		Padding(2, 0)

	if m.FilterSummary() != "" {
		return style.Render("No matching requests.\nTry adjusting your filters.")
	}
	return style.Render("No requests yet.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = width - 4
}
