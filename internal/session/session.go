// Package session resolves the currently acting user from a persisted
// session slot, created at login and destroyed at logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"contactflow/internal/apperrors"
	"contactflow/internal/authapi"
	"contactflow/internal/model"
	"contactflow/internal/store"
)

// Route is a navigation target returned by role checks. The UI shell
// decides how to act on it.
type Route int

const (
	RouteNone Route = iota
	RouteLogin
	RouteAdminDashboard
	RouteClientDashboard
)

// Manager performs login/logout and answers "who is acting now".
type Manager struct {
	store   *store.Store
	storage Storage
	remote  *authapi.Client

	Clock func() time.Time
}

// NewManager creates a session manager. remote may be nil, in which case
// credentials are only checked against the local user collection.
func NewManager(s *store.Store, storage Storage, remote *authapi.Client) *Manager {
	return &Manager{
		store:   s,
		storage: storage,
		remote:  remote,
		Clock:   time.Now,
	}
}

// Login checks the credentials and, on success, persists and returns the
// new session. The email comparison is case-insensitive; the role must
// match exactly. Fails with ErrInvalidCredentials on any mismatch and
// with ErrServerConnection when the remote endpoint is unreachable.
func (m *Manager) Login(ctx context.Context, email, password, role string) (*model.Session, error) {
	user, err := m.authenticate(ctx, email, password, role)
	if err != nil {
		return nil, err
	}

	sess := model.NewSession(*user, m.Clock().UTC())
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	if err := m.storage.Write(data); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	return &sess, nil
}

func (m *Manager) authenticate(ctx context.Context, email, password, role string) (*model.User, error) {
	if m.remote != nil {
		return m.remote.Login(ctx, email, password, role)
	}

	users, err := store.GetAll[model.User](m.store, store.CollectionUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		u := &users[i]
		if !strings.EqualFold(u.Email, email) || u.Role != role {
			continue
		}
		if u.Password != password {
			break
		}
		return u, nil
	}

	return nil, apperrors.ErrInvalidCredentials
}

// Logout clears the persisted session.
func (m *Manager) Logout() error {
	return m.storage.Clear()
}

// Current returns the persisted session, or nil when logged out.
func (m *Manager) Current() (*model.Session, error) {
	data, err := m.storage.Read()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &sess, nil
}

// IsLoggedIn reports whether a session is persisted.
func (m *Manager) IsLoggedIn() bool {
	sess, err := m.Current()
	return err == nil && sess != nil
}

// HasRole reports whether the current session exists and has the role.
func (m *Manager) HasRole(role string) bool {
	sess, err := m.Current()
	return err == nil && sess != nil && sess.Role == role
}

// RequireRole returns where to navigate when the current session does not
// hold the required role: the login entry point when logged out, or the
// session holder's own dashboard otherwise. RouteNone means access is
// allowed.
func (m *Manager) RequireRole(role string) Route {
	sess, err := m.Current()
	if err != nil || sess == nil {
		return RouteLogin
	}
	if sess.Role == role {
		return RouteNone
	}
	if sess.Role == model.RoleAdmin {
		return RouteAdminDashboard
	}
	return RouteClientDashboard
}

// DashboardFor returns the dashboard route for a role.
func DashboardFor(role string) Route {
	if role == model.RoleAdmin {
		return RouteAdminDashboard
	}
	return RouteClientDashboard
}

// IsAuthFailure reports whether err is a credential rejection rather than
// an infrastructure failure.
func IsAuthFailure(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidCredentials)
}
