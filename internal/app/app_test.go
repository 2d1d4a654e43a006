package app

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/fanout"
	"contactflow/internal/model"
	"contactflow/internal/service"
	"contactflow/internal/session"
	"contactflow/internal/ui/requests"
	"contactflow/tests/testutil"
)

func newTestModel(t *testing.T, role string) Model {
	t.Helper()

	s := testutil.NewMemoryStore(t)

	sess := model.Session{ID: role + "1", Name: "Test User", Role: role}
	data, err := json.Marshal(sess)
	require.NoError(t, err)

	storage := &session.MemoryStorage{}
	require.NoError(t, storage.Write(data))

	mgr := session.NewManager(s, storage, nil)
	svc := service.New(s, fanout.NewRunner(s, nil), nil)

	m := New(s, mgr, svc, 10)
	m.session = sess
	m.currentView = ViewRequests
	return m
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewRequestKeyOnlyForClients(t *testing.T) {
	client := newTestModel(t, model.RoleClient)
	cmd, handled := client.handleGlobalKeys(keyMsg('n'))
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.Equal(t, ViewRequestForm, client.currentView)

	admin := newTestModel(t, model.RoleAdmin)
	_, handled = admin.handleGlobalKeys(keyMsg('n'))
	assert.False(t, handled)
	assert.Equal(t, ViewRequests, admin.currentView)
}

func TestStatusChangeOnlyForAdmins(t *testing.T) {
	client := newTestModel(t, model.RoleClient)
	_, cmd := client.Update(requests.StatusChangedMsg{RequestID: "req-1", Status: model.StatusCompleted})
	assert.Nil(t, cmd)

	admin := newTestModel(t, model.RoleAdmin)
	_, cmd = admin.Update(requests.StatusChangedMsg{RequestID: "req-1", Status: model.StatusCompleted})
	assert.NotNil(t, cmd)
}
