package requests

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"contactflow/internal/keys"
	"contactflow/internal/model"
	"contactflow/internal/theme"
)

// DetailLoadedMsg carries a request and its comments into the detail view.
type DetailLoadedMsg struct {
	Request  *model.Request
	Comments []model.Comment

	// Authors maps user ids to display names for comment attribution.
	Authors map[string]string
}

// BackMsg is sent when the user leaves the detail view.
type BackMsg struct{}

// CommentSubmittedMsg is sent when the user submits a comment.
type CommentSubmittedMsg struct {
	RequestID string
	Text      string
}

// FeedbackSubmittedMsg is sent when the user submits feedback.
type FeedbackSubmittedMsg struct {
	RequestID string
	Rating    int
	Comment   string
}

// StatusChangedMsg is sent when an admin picks a new request status.
type StatusChangedMsg struct {
	RequestID string
	Status    string
}

// detailBindings holds inline form values on the heap.
type detailBindings struct {
	commentText     string
	feedbackRating  int
	feedbackComment string
	status          string
}

// DetailModel shows one request with its comment thread and actions.
type DetailModel struct {
	session  model.Session
	request  *model.Request
	comments []model.Comment
	authors  map[string]string

	form *huh.Form
	fb   *detailBindings
	mode string // "", "comment", "feedback", "status"

	errText string
	keys    *keys.KeyMap
	width   int
	height  int
}

// NewDetail creates a detail model for the given session.
func NewDetail(session model.Session, k *keys.KeyMap, width, height int) DetailModel {
	return DetailModel{
		session: session,
		fb:      &detailBindings{feedbackRating: 5},
		keys:    k,
		width:   width,
		height:  height,
	}
}

// SetError displays an error message on the next render.
func (m *DetailModel) SetError(text string) {
	m.errText = text
}

// Update handles messages for the detail view.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DetailLoadedMsg:
		m.request = msg.Request
		m.comments = msg.Comments
		m.authors = msg.Authors
		m.mode = ""
		m.form = nil
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKeys(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m DetailModel) handleKeys(msg tea.KeyMsg) (DetailModel, tea.Cmd) {
	if m.request == nil {
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Comment):
		m.mode = "comment"
		m.fb.commentText = ""
		m.form = m.buildCommentForm()
		m.errText = ""
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Feedback):
		if m.session.Role != model.RoleClient || m.request.Status != model.StatusCompleted || m.request.Feedback != nil {
			return m, nil
		}
		m.mode = "feedback"
		m.fb.feedbackRating = 5
		m.fb.feedbackComment = ""
		m.form = m.buildFeedbackForm()
		m.errText = ""
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Status):
		if m.session.Role != model.RoleAdmin {
			return m, nil
		}
		m.mode = "status"
		m.fb.status = m.request.Status
		m.form = m.buildStatusForm()
		m.errText = ""
		return m, m.form.Init()
	}
	return m, nil
}

func (m DetailModel) updateForm(msg tea.Msg) (DetailModel, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		mode, fb, id := m.mode, *m.fb, m.request.ID
		m.form = nil
		m.mode = ""
		switch mode {
		case "comment":
			return m, func() tea.Msg { return CommentSubmittedMsg{RequestID: id, Text: fb.commentText} }
		case "feedback":
			return m, func() tea.Msg {
				return FeedbackSubmittedMsg{RequestID: id, Rating: fb.feedbackRating, Comment: fb.feedbackComment}
			}
		case "status":
			return m, func() tea.Msg { return StatusChangedMsg{RequestID: id, Status: fb.status} }
		}
		return m, nil

	case huh.StateAborted:
		m.form = nil
		m.mode = ""
		return m, nil
	}

	return m, cmd
}

// View renders the detail view.
func (m DetailModel) View() string {
	if m.request == nil {
		return theme.HelpStyle.Render("Loading...")
	}

	r := m.request
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(r.Title) + "\n")
	sb.WriteString(fmt.Sprintf("%s %s %s %s\n\n",
		theme.HelpStyle.Render(r.ID),
		theme.StatusStyle(r.Status).Render(r.Status),
		theme.PriorityStyle(r.Priority).Render(r.Priority),
		theme.HelpStyle.Render(r.Type),
	))
	sb.WriteString(r.Description + "\n")

	if len(r.Attachments) > 0 {
		sb.WriteString("\n" + theme.HeaderStyle.Render("Attachments") + "\n")
		for _, a := range r.Attachments {
			sb.WriteString(fmt.Sprintf("%s (%d bytes)\n", a.Name, a.Size))
		}
	}

	sb.WriteString("\n" + theme.HeaderStyle.Render("Comments") + "\n")
	if len(m.comments) == 0 {
		sb.WriteString(theme.HelpStyle.Render("no comments yet") + "\n")
	}
	for _, c := range m.comments {
		author := m.authors[c.UserID]
		if author == "" {
			author = c.UserID
		}
		sb.WriteString(fmt.Sprintf("%s %s\n  %s\n",
			lipgloss.NewStyle().Bold(true).Render(author),
			theme.HelpStyle.Render(c.CreatedAt.Format("Jan 2 15:04")),
			c.Text,
		))
	}

	if r.Feedback != nil {
		sb.WriteString("\n" + theme.HeaderStyle.Render("Feedback") + "\n")
		sb.WriteString(fmt.Sprintf("%s %s\n",
			strings.Repeat("★", r.Feedback.Rating)+strings.Repeat("☆", 5-r.Feedback.Rating),
			r.Feedback.Comment,
		))
	}

	if m.errText != "" {
		sb.WriteString("\n" + theme.ErrorStyle.Render(m.errText) + "\n")
	}

	if m.form != nil {
		sb.WriteString("\n" + m.form.View())
	}

	return theme.DetailPanelStyle.Width(m.width - 4).Render(sb.String())
}

// SetSize updates the view dimensions.
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *DetailModel) buildCommentForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Comment").
				Value(&m.fb.commentText).
				Validate(requiredField("Comment")),
		),
	).WithWidth(m.width - 8)
}

func (m *DetailModel) buildFeedbackForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Rating").
				Options(
					huh.NewOption("★★★★★", 5),
					huh.NewOption("★★★★", 4),
					huh.NewOption("★★★", 3),
					huh.NewOption("★★", 2),
					huh.NewOption("★", 1),
				).
				Value(&m.fb.feedbackRating),
			huh.NewText().
				Title("Comment").
				Placeholder("Optional").
				Value(&m.fb.feedbackComment),
		),
	).WithWidth(m.width - 8)
}

func (m *DetailModel) buildStatusForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Pending", model.StatusPending),
					huh.NewOption("In Progress", model.StatusInProgress),
					huh.NewOption("Completed", model.StatusCompleted),
					huh.NewOption("Cancelled", model.StatusCancelled),
				).
				Value(&m.fb.status),
		),
	).WithWidth(m.width - 8)
}
