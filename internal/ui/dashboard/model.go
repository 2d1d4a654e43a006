package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contactflow/internal/model"
	"contactflow/internal/theme"
	"contactflow/internal/views"
)

// DataLoadedMsg carries the records the dashboard renders from.
type DataLoadedMsg struct {
	Requests   []model.Request
	Tasks      []model.Task
	Activities []model.Activity
	Widgets    []string
}

// Model renders the role-specific dashboard from loaded records.
type Model struct {
	session model.Session
	clock   func() time.Time

	requests   []model.Request
	tasks      []model.Task
	activities []model.Activity
	widgets    []string

	width  int
	height int
}

// New creates a dashboard model for the given session.
func New(session model.Session, clock func() time.Time, width, height int) Model {
	if clock == nil {
		clock = time.Now
	}
	return Model{
		session: session,
		clock:   clock,
		widgets: model.DefaultWidgets,
		width:   width,
		height:  height,
	}
}

// Update handles messages for the dashboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if data, ok := msg.(DataLoadedMsg); ok {
		m.requests = data.Requests
		m.tasks = data.Tasks
		m.activities = data.Activities
		if len(data.Widgets) > 0 {
			m.widgets = data.Widgets
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	scoped := m.requests
	if m.session.Role == model.RoleClient {
		scoped = views.OwnedBy(m.requests, m.session.ID)
	}

	sections := []string{m.renderStats(scoped)}
	for _, id := range m.widgets {
		if section := m.renderWidget(id, scoped); section != "" {
			sections = append(sections, section)
		}
	}
	if m.session.Role == model.RoleAdmin {
		sections = append(sections, m.renderActivity())
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderStats(scoped []model.Request) string {
	stats := views.ComputeStats(scoped)

	cards := []string{
		statCard("Total", fmt.Sprintf("%d", stats.Total)),
		statCard("Pending", fmt.Sprintf("%d", stats.Pending)),
		statCard("In Progress", fmt.Sprintf("%d", stats.InProgress)),
		statCard("Completed", fmt.Sprintf("%d", stats.Completed)),
		statCard("Avg Rating", stats.AvgRating),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func statCard(label, value string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(value),
		theme.HelpStyle.Render(label),
	)
	return theme.CardStyle.Render(body)
}

func (m Model) renderWidget(id string, scoped []model.Request) string {
	switch id {
	case model.WidgetRecentRequests:
		if m.session.Role == model.RoleClient {
			return m.renderRequestRows("Recent Requests", views.RecentRequests(scoped))
		}
		return m.renderRequestRows("Recent Requests", views.RecentRequestsByCreated(scoped))
	case model.WidgetHighPriorityTasks:
		return m.renderTaskRows("High Priority Tasks", views.HighPriorityTasks(m.tasks, scoped), false)
	case model.WidgetUpcomingTasks:
		return m.renderTaskRows("Upcoming Tasks", views.UpcomingTasks(m.tasks, scoped, m.clock()), true)
	case model.WidgetRequestStatus:
		return m.renderSatisfaction(scoped)
	default:
		return ""
	}
}

func (m Model) renderRequestRows(title string, requests []model.Request) string {
	var sb strings.Builder
	sb.WriteString(theme.HeaderStyle.Render(title) + "\n")
	if len(requests) == 0 {
		sb.WriteString(theme.HelpStyle.Render("nothing here yet"))
		return sb.String()
	}
	for _, r := range requests {
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			theme.StatusStyle(r.Status).Render(r.Status),
			theme.PriorityStyle(r.Priority).Render(r.Priority),
			r.Title,
		))
	}
	return sb.String()
}

func (m Model) renderTaskRows(title string, tasks []model.Task, showDue bool) string {
	var sb strings.Builder
	sb.WriteString(theme.HeaderStyle.Render(title) + "\n")
	if len(tasks) == 0 {
		sb.WriteString(theme.HelpStyle.Render("nothing here yet"))
		return sb.String()
	}
	for _, t := range tasks {
		line := fmt.Sprintf("%s %s",
			theme.PriorityStyle(t.Priority).Render(t.Priority),
			t.Title,
		)
		if showDue && t.DueDate != nil {
			line += theme.HelpStyle.Render("  due " + t.DueDate.Format("Jan 2"))
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m Model) renderSatisfaction(scoped []model.Request) string {
	buckets := views.SatisfactionBuckets(scoped)

	var sb strings.Builder
	sb.WriteString(theme.HeaderStyle.Render("Client Satisfaction") + "\n")
	for i := 4; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%d★ %s\n", i+1, strings.Repeat("█", buckets[i])))
	}
	return sb.String()
}

func (m Model) renderActivity() string {
	var sb strings.Builder
	sb.WriteString(theme.HeaderStyle.Render("Recent Activity") + "\n")
	recent := views.RecentActivity(m.activities)
	if len(recent) == 0 {
		sb.WriteString(theme.HelpStyle.Render("no activity yet"))
		return sb.String()
	}
	for _, a := range recent {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			theme.HelpStyle.Render(a.CreatedAt.Format("Jan 2 15:04")),
			a.Details,
		))
	}
	return sb.String()
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
