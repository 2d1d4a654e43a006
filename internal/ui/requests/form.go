package requests

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"contactflow/internal/model"
	"contactflow/internal/service"
	"contactflow/internal/theme"
)

// SubmittedMsg is dispatched when the new-request form is submitted.
type SubmittedMsg struct {
	Draft service.RequestDraft
}

// FormCancelMsg is dispatched when the user cancels the form.
type FormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	reqType     string
	priority    string
	description string
}

// FormModel is the Bubble Tea model for the new request form.
type FormModel struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// NewForm creates a new request form model.
func NewForm(width, height int) FormModel {
	return FormModel{
		fb:     &formBindings{priority: model.PriorityMedium},
		width:  width,
		height: height,
	}
}

// Start initializes a fresh form.
func (m *FormModel) Start() tea.Cmd {
	m.fb.title = ""
	m.fb.reqType = ""
	m.fb.priority = model.PriorityMedium
	m.fb.description = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the request form.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		fb := *m.fb
		return m, func() tea.Msg {
			return SubmittedMsg{Draft: service.RequestDraft{
				Title:       fb.title,
				Type:        fb.reqType,
				Priority:    fb.priority,
				Description: fb.description,
			}}
		}
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return FormCancelMsg{} }
	}

	return m, cmd
}

// View renders the request form.
func (m FormModel) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("New Service Request") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *FormModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Short summary").
				Value(&m.fb.title).
				Validate(requiredField("Title")),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Technical Support", "support"),
					huh.NewOption("Feature Request", "feature"),
					huh.NewOption("Billing", "billing"),
					huh.NewOption("General Inquiry", "general"),
				).
				Value(&m.fb.reqType),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", model.PriorityLow),
					huh.NewOption("Medium", model.PriorityMedium),
					huh.NewOption("High", model.PriorityHigh),
					huh.NewOption("Urgent", model.PriorityUrgent),
				).
				Value(&m.fb.priority),
			huh.NewText().
				Title("Description").
				Placeholder("Describe the issue or request...").
				Value(&m.fb.description).
				Validate(requiredField("Description")),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m FormModel) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m FormModel) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func requiredField(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
