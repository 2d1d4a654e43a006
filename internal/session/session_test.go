package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/apperrors"
	"contactflow/internal/model"
	"contactflow/internal/session"
	"contactflow/internal/store"
	"contactflow/tests/testutil"
)

func seedUser(t *testing.T, s *store.Store, email, password, role string) *model.User {
	t.Helper()
	u := &model.User{Email: email, Password: password, Name: "Test " + role, Role: role}
	require.NoError(t, s.SaveRecord(store.CollectionUsers, u))
	return u
}

func newManager(t *testing.T) (*session.Manager, *store.Store) {
	t.Helper()
	s := testutil.NewMemoryStore(t)
	m := session.NewManager(s, &session.MemoryStorage{}, nil)
	m.Clock = s.Clock
	return m, s
}

func TestLoginSuccess(t *testing.T) {
	m, s := newManager(t)
	u := seedUser(t, s, "john@example.com", "secret", model.RoleClient)

	sess, err := m.Login(context.Background(), "john@example.com", "secret", model.RoleClient)
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.ID)
	assert.Equal(t, model.RoleClient, sess.Role)
	assert.Equal(t, testutil.FixedTime, sess.LoggedInAt)
	assert.True(t, m.IsLoggedIn())
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	m, s := newManager(t)
	seedUser(t, s, "John@Example.com", "secret", model.RoleClient)

	_, err := m.Login(context.Background(), "john@example.COM", "secret", model.RoleClient)
	require.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	m, s := newManager(t)
	seedUser(t, s, "john@example.com", "secret", model.RoleClient)

	_, err := m.Login(context.Background(), "john@example.com", "wrong", model.RoleClient)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.True(t, session.IsAuthFailure(err))
	assert.False(t, m.IsLoggedIn())
}

func TestLoginRoleMustMatch(t *testing.T) {
	m, s := newManager(t)
	seedUser(t, s, "john@example.com", "secret", model.RoleClient)

	_, err := m.Login(context.Background(), "john@example.com", "secret", model.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCurrentExcludesPassword(t *testing.T) {
	s := testutil.NewMemoryStore(t)
	storage := &session.MemoryStorage{}
	m := session.NewManager(s, storage, nil)
	seedUser(t, s, "john@example.com", "secret", model.RoleClient)

	_, err := m.Login(context.Background(), "john@example.com", "secret", model.RoleClient)
	require.NoError(t, err)

	sess, err := m.Current()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "john@example.com", sess.Email)

	// The persisted session bytes must never carry the password.
	data, err := storage.Read()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
}

func TestLogout(t *testing.T) {
	m, s := newManager(t)
	seedUser(t, s, "john@example.com", "secret", model.RoleClient)

	_, err := m.Login(context.Background(), "john@example.com", "secret", model.RoleClient)
	require.NoError(t, err)
	require.NoError(t, m.Logout())

	sess, err := m.Current()
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.False(t, m.IsLoggedIn())
}

func TestRequireRole(t *testing.T) {
	m, s := newManager(t)
	seedUser(t, s, "admin@example.com", "secret", model.RoleAdmin)

	// Logged out: everything routes to login.
	assert.Equal(t, session.RouteLogin, m.RequireRole(model.RoleAdmin))

	_, err := m.Login(context.Background(), "admin@example.com", "secret", model.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, session.RouteNone, m.RequireRole(model.RoleAdmin))
	// Wrong role routes to the holder's own dashboard.
	assert.Equal(t, session.RouteAdminDashboard, m.RequireRole(model.RoleClient))
	assert.True(t, m.HasRole(model.RoleAdmin))
	assert.False(t, m.HasRole(model.RoleClient))
}

func TestDashboardFor(t *testing.T) {
	assert.Equal(t, session.RouteAdminDashboard, session.DashboardFor(model.RoleAdmin))
	assert.Equal(t, session.RouteClientDashboard, session.DashboardFor(model.RoleClient))
}
