package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"contactflow/internal/apperrors"
	"contactflow/internal/keys"
	"contactflow/internal/model"
	"contactflow/internal/service"
	"contactflow/internal/session"
	"contactflow/internal/store"
	"contactflow/internal/theme"
	"contactflow/internal/ui"
	"contactflow/internal/ui/dashboard"
	"contactflow/internal/ui/login"
	"contactflow/internal/ui/notifications"
	"contactflow/internal/ui/requests"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewDashboard
	ViewRequests
	ViewRequestDetail
	ViewRequestForm
	ViewNotifications
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the persistence and session layers.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        *store.Store
	sessions     *session.Manager
	svc          *service.Service
	keys         *keys.KeyMap

	session model.Session

	loginView   login.Model
	dashView    dashboard.Model
	listView    requests.Model
	detailView  requests.DetailModel
	formView    requests.FormModel
	inboxView   notifications.Model
	ready       bool
	unreadCount int
	statusText  string
}

// New creates a new root application model.
func New(s *store.Store, sessions *session.Manager, svc *service.Service, perPage int) Model {
	km := keys.DefaultKeyMap()

	return Model{
		currentView: ViewLogin,
		store:       s,
		sessions:    sessions,
		svc:         svc,
		keys:        km,
		loginView:   login.New(80, 24),
		listView:    requests.New(km, perPage, s.Clock, 80, 24),
		formView:    requests.NewForm(80, 24),
		inboxView:   notifications.New(km, 80, 24),
	}
}

// Init restores a persisted session when one exists, otherwise it shows
// the login form.
func (m Model) Init() tea.Cmd {
	if sess, err := m.sessions.Current(); err == nil && sess != nil {
		return func() tea.Msg { return loginResultMsg{session: sess} }
	}
	return m.loginView.Start()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.loginView.SetSize(contentWidth, contentHeight)
		m.dashView.SetSize(contentWidth, contentHeight)
		m.listView.SetSize(contentWidth, contentHeight)
		m.detailView.SetSize(contentWidth, contentHeight)
		m.formView.SetSize(contentWidth, contentHeight)
		m.inboxView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case login.SubmitMsg:
		return m, m.doLogin(msg.Email, msg.Password, msg.Role)

	case loginResultMsg:
		if msg.err != nil {
			if session.IsAuthFailure(msg.err) {
				m.loginView.SetError("Invalid email, password, or role.")
			} else {
				m.loginView.SetError("Could not reach the login server. Try again later.")
			}
			m.currentView = ViewLogin
			return m, m.loginView.Start()
		}
		m.session = *msg.session
		m.dashView = dashboard.New(m.session, m.store.Clock, m.layout.ContentWidth(), m.layout.ContentHeight())
		m.detailView = requests.NewDetail(m.session, m.keys, m.layout.ContentWidth(), m.layout.ContentHeight())
		m.currentView = ViewDashboard
		return m, tea.Batch(m.loadDashboard(), m.fetchUnreadCount())

	case dashboard.DataLoadedMsg:
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		return m, cmd

	case requests.LoadedMsg:
		var cmd tea.Cmd
		m.listView, cmd = m.listView.Update(msg)
		return m, cmd

	case requests.SelectedMsg:
		m.previousView = m.currentView
		m.currentView = ViewRequestDetail
		return m, m.loadRequestDetail(msg.RequestID)

	case requests.DetailLoadedMsg:
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd

	case requests.BackMsg:
		m.currentView = ViewRequests
		return m, m.loadRequests()

	case requests.SubmittedMsg:
		m.currentView = ViewRequests
		draft := msg.Draft
		return m, action(func() error {
			_, err := m.svc.SubmitRequest(m.session, draft)
			return err
		})

	case requests.FormCancelMsg:
		m.currentView = ViewRequests
		return m, nil

	case requests.CommentSubmittedMsg:
		requestID, text := msg.RequestID, msg.Text
		return m, tea.Sequence(
			action(func() error {
				_, err := m.svc.AddComment(m.session, requestID, text)
				return err
			}),
			m.loadRequestDetail(requestID),
		)

	case requests.FeedbackSubmittedMsg:
		requestID, rating, comment := msg.RequestID, msg.Rating, msg.Comment
		return m, tea.Sequence(
			action(func() error {
				_, err := m.svc.SubmitFeedback(m.session, requestID, rating, comment)
				return err
			}),
			m.loadRequestDetail(requestID),
		)

	case requests.StatusChangedMsg:
		if m.sessions.RequireRole(model.RoleAdmin) != session.RouteNone {
			return m, nil
		}
		requestID, status := msg.RequestID, msg.Status
		return m, tea.Sequence(
			action(func() error {
				_, err := m.svc.UpdateRequestStatus(requestID, status)
				return err
			}),
			m.loadRequestDetail(requestID),
		)

	case notifications.LoadedMsg:
		var cmd tea.Cmd
		m.inboxView, cmd = m.inboxView.Update(msg)
		return m, cmd

	case notifications.MarkReadMsg:
		id := msg.NotificationID
		return m, tea.Sequence(
			action(func() error { return m.svc.MarkNotificationRead(id) }),
			m.loadNotifications(),
			m.fetchUnreadCount(),
		)

	case notifications.MarkAllReadMsg:
		return m, tea.Sequence(
			action(func() error { return m.svc.MarkAllNotificationsRead(m.session.ID) }),
			m.loadNotifications(),
			m.fetchUnreadCount(),
		)

	case notifications.ClearAllMsg:
		return m, tea.Sequence(
			action(func() error { return m.svc.ClearNotifications(m.session.ID) }),
			m.loadNotifications(),
			m.fetchUnreadCount(),
		)

	case actionResultMsg:
		if msg.err != nil {
			m.statusText = describeError(msg.err)
			return m, nil
		}
		m.statusText = ""
		switch m.currentView {
		case ViewDashboard:
			return m, tea.Batch(m.loadDashboard(), m.fetchUnreadCount())
		case ViewRequests:
			return m, tea.Batch(m.loadRequests(), m.fetchUnreadCount())
		}
		return m, m.fetchUnreadCount()

	case unreadCountMsg:
		m.unreadCount = msg.count
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that work regardless of the current
// view. Views with focused text input keep their keystrokes.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}
	if m.currentView == ViewLogin || m.currentView == ViewRequestForm {
		return nil, false
	}

	switch msg.String() {
	case "q":
		if m.currentView == ViewDashboard {
			return tea.Quit, true
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil, true

	case "g":
		if m.currentView != ViewRequestDetail {
			m.currentView = ViewDashboard
			return tea.Batch(m.loadDashboard(), m.fetchUnreadCount()), true
		}

	case "r":
		if m.currentView == ViewDashboard || m.currentView == ViewNotifications {
			m.currentView = ViewRequests
			return m.loadRequests(), true
		}

	case "i":
		if m.currentView == ViewDashboard || m.currentView == ViewRequests {
			m.currentView = ViewNotifications
			return m.loadNotifications(), true
		}

	case "n":
		if m.currentView == ViewRequests && m.sessions.RequireRole(model.RoleClient) == session.RouteNone {
			m.previousView = m.currentView
			m.currentView = ViewRequestForm
			return m.formView.Start(), true
		}

	case "D":
		dark, _, err := store.GetValue[bool](m.store, store.SlotDarkMode)
		if err == nil {
			dark = !dark
			if store.PutValue(m.store, store.SlotDarkMode, dark) == nil {
				theme.ApplyDarkMode(dark)
			}
		}
		return nil, true

	case "L":
		if err := m.sessions.Logout(); err == nil {
			m.session = model.Session{}
			m.currentView = ViewLogin
			return m.loginView.Start(), true
		}
	}
	return nil, false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewDashboard:
		m.dashView, cmd = m.dashView.Update(msg)
	case ViewRequests:
		m.listView, cmd = m.listView.Update(msg)
	case ViewRequestDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewRequestForm:
		m.formView, cmd = m.formView.Update(msg)
	case ViewNotifications:
		m.inboxView, cmd = m.inboxView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	headerTitle := "ContactFlow"
	if m.unreadCount > 0 {
		headerTitle = fmt.Sprintf("ContactFlow [%d new]", m.unreadCount)
	}
	header := m.layout.RenderHeader(headerTitle, m.identity())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewDashboard:
		return m.dashView.View()
	case ViewRequests:
		return m.listView.View()
	case ViewRequestDetail:
		return m.detailView.View()
	case ViewRequestForm:
		return m.formView.View()
	case ViewNotifications:
		return m.inboxView.View()
	case ViewHelp:
		return m.renderHelp()
	default:
		return ""
	}
}

func (m Model) identity() string {
	if m.session.ID == "" {
		return "signed out"
	}
	return fmt.Sprintf("%s (%s)", m.session.Name, m.session.Role)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusText != "" {
		return m.statusText
	}

	switch m.currentView {
	case ViewLogin:
		return "enter submit | ctrl+c quit"
	case ViewDashboard:
		return "q quit | ? help | r requests | i inbox | L logout"
	case ViewRequests:
		hints := "enter open | / search | 1 status | 2 priority | 3 date | h/l page | g dashboard"
		if m.session.Role == model.RoleClient {
			hints = "n new | " + hints
		}
		if summary := m.listView.FilterSummary(); summary != "" {
			return summary + " | " + hints
		}
		return hints
	case ViewRequestDetail:
		hints := "esc back | c comment"
		if m.session.Role == model.RoleClient {
			hints += " | f feedback"
		} else {
			hints += " | t status"
		}
		return hints
	case ViewRequestForm:
		return "enter submit | esc cancel"
	case ViewNotifications:
		return "m mark read | M mark all | X clear | r requests | g dashboard"
	case ViewHelp:
		return "? close help"
	default:
		return ""
	}
}

func (m Model) renderHelp() string {
	return `
  Navigation
    g        dashboard
    r        request list
    i        notification inbox
    ?        toggle this help
    D        toggle dark mode
    L        log out
    ctrl+c   quit

  Request list
    /        search
    1/2/3    cycle status, priority, date filters
    h/l      previous / next page
    enter    open detail
    n        new request (clients)

  Request detail
    c        add comment
    f        submit feedback (clients, completed requests)
    t        change status (admins)
`
}

func describeError(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return err.Error()
	case err == nil:
		return ""
	default:
		return "Error: " + err.Error()
	}
}
