package login

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"contactflow/internal/model"
	"contactflow/internal/theme"
)

// SubmitMsg is dispatched when the user submits the login form.
type SubmitMsg struct {
	Email    string
	Password string
	Role     string
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	email    string
	password string
	role     string
}

// Model is the Bubble Tea model for the login form.
type Model struct {
	form    *huh.Form
	fb      *formBindings
	errText string
	width   int
	height  int
}

// New creates a new login form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{role: model.RoleClient},
		width:  width,
		height: height,
	}
}

// Start initializes a fresh form, clearing previous input.
func (m *Model) Start() tea.Cmd {
	m.fb.email = ""
	m.fb.password = ""
	m.fb.role = model.RoleClient
	m.form = m.buildForm()
	return m.form.Init()
}

// SetError displays an error message below the form on the next render.
func (m *Model) SetError(text string) {
	m.errText = text
}

// Update handles messages for the login form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		fb := *m.fb
		m.errText = ""
		return m, func() tea.Msg {
			return SubmitMsg{Email: fb.email, Password: fb.password, Role: fb.role}
		}
	}

	return m, cmd
}

// View renders the login form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Sign In") + "\n" + m.form.View()
	if m.errText != "" {
		content += "\n" + theme.ErrorStyle.Render(m.errText)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&m.fb.email).
				Validate(validateRequired("Email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password).
				Validate(validateRequired("Password")),
			huh.NewSelect[string]().
				Title("Sign in as").
				Options(
					huh.NewOption("Client", model.RoleClient),
					huh.NewOption("Administrator", model.RoleAdmin),
				).
				Value(&m.fb.role),
		),
	).WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
