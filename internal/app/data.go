package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"contactflow/internal/model"
	"contactflow/internal/store"
	"contactflow/internal/ui/dashboard"
	"contactflow/internal/ui/notifications"
	"contactflow/internal/ui/requests"
	"contactflow/internal/views"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	session *model.Session
	err     error
}

// actionResultMsg carries the outcome of a mutating operation, with the
// views to reload afterwards.
type actionResultMsg struct {
	err error
}

// unreadCountMsg carries the number of unread notifications to the header.
type unreadCountMsg struct {
	count int
}

// doLogin returns a command that authenticates and persists the session.
func (m Model) doLogin(email, password, role string) tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		sess, err := sessions.Login(context.Background(), email, password, role)
		return loginResultMsg{session: sess, err: err}
	}
}

// loadDashboard returns a command that loads the dashboard data set.
func (m Model) loadDashboard() tea.Cmd {
	s := m.store
	userID := m.session.ID
	return func() tea.Msg {
		reqs, err := store.GetAll[model.Request](s, store.CollectionRequests)
		if err != nil {
			return actionResultMsg{err: err}
		}
		tasks, err := store.GetAll[model.Task](s, store.CollectionTasks)
		if err != nil {
			return actionResultMsg{err: err}
		}
		activities, err := store.GetAll[model.Activity](s, store.CollectionActivities)
		if err != nil {
			return actionResultMsg{err: err}
		}
		config, _, err := store.GetValue[model.WidgetConfig](s, store.SlotDashboardWidgets)
		if err != nil {
			return actionResultMsg{err: err}
		}
		return dashboard.DataLoadedMsg{
			Requests:   reqs,
			Tasks:      tasks,
			Activities: activities,
			Widgets:    views.WidgetsFor(config, userID),
		}
	}
}

// loadRequests returns a command that loads the request list, scoped to
// the client's own requests for client sessions.
func (m Model) loadRequests() tea.Cmd {
	s := m.store
	sess := m.session
	return func() tea.Msg {
		reqs, err := store.GetAll[model.Request](s, store.CollectionRequests)
		if err != nil {
			return actionResultMsg{err: err}
		}
		if sess.Role == model.RoleClient {
			reqs = views.OwnedBy(reqs, sess.ID)
		}
		return requests.LoadedMsg{Requests: reqs}
	}
}

// loadRequestDetail returns a command that loads one request with its
// comment thread and author names.
func (m Model) loadRequestDetail(requestID string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		req, ok, err := store.GetByID[model.Request](s, store.CollectionRequests, requestID)
		if err != nil || !ok {
			return requests.DetailLoadedMsg{}
		}

		all, err := store.GetAll[model.Comment](s, store.CollectionComments)
		if err != nil {
			return requests.DetailLoadedMsg{Request: req}
		}
		thread := make([]model.Comment, 0, len(all))
		for _, c := range all {
			if c.RequestID == requestID {
				thread = append(thread, c)
			}
		}

		authors := make(map[string]string)
		if users, err := store.GetAll[model.User](s, store.CollectionUsers); err == nil {
			for _, u := range users {
				authors[u.ID] = u.Name
			}
		}
		return requests.DetailLoadedMsg{Request: req, Comments: thread, Authors: authors}
	}
}

// loadNotifications returns a command that loads the session's inbox.
func (m Model) loadNotifications() tea.Cmd {
	s := m.store
	userID := m.session.ID
	return func() tea.Msg {
		all, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
		if err != nil {
			return actionResultMsg{err: err}
		}
		return notifications.LoadedMsg{Notifications: views.NotificationsFor(all, userID)}
	}
}

// fetchUnreadCount returns a command that counts unread notifications for
// the header badge.
func (m Model) fetchUnreadCount() tea.Cmd {
	s := m.store
	userID := m.session.ID
	return func() tea.Msg {
		all, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
		if err != nil {
			return unreadCountMsg{count: 0}
		}
		return unreadCountMsg{count: views.UnreadCount(all, userID)}
	}
}

// action wraps a mutating call as a command.
func action(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionResultMsg{err: fn()}
	}
}
