package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/model"
	"contactflow/internal/ui/dashboard"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func clientSession() model.Session {
	return model.Session{ID: "client1", Name: "John", Role: model.RoleClient}
}

func request(id, clientID string) model.Request {
	r := model.Request{ClientID: clientID, Title: id, Status: model.StatusPending, Priority: model.PriorityLow}
	r.ID = id
	r.CreatedAt = now
	r.UpdatedAt = now
	return r
}

func relatedTask(title, requestID string) model.Task {
	t := model.Task{
		Title:            title,
		RelatedRequestID: requestID,
		Status:           model.TaskStatusTodo,
		Priority:         model.PriorityUrgent,
	}
	t.ID = title
	return t
}

func TestClientDashboardShowsOwnRelatedTasks(t *testing.T) {
	m := dashboard.New(clientSession(), func() time.Time { return now }, 100, 40)
	m, _ = m.Update(dashboard.DataLoadedMsg{
		Requests: []model.Request{
			request("req1", "client1"),
			request("req2", "client2"),
		},
		Tasks: []model.Task{
			relatedTask("FixClientOutage", "req1"),
			relatedTask("OtherClientTask", "req2"),
		},
		Widgets: []string{model.WidgetHighPriorityTasks},
	})

	out := m.View()
	require.Contains(t, out, "High Priority Tasks")
	assert.Contains(t, out, "FixClientOutage")
	assert.NotContains(t, out, "OtherClientTask")
}

func TestClientDashboardUpcomingTasksScoped(t *testing.T) {
	due := now.Add(48 * time.Hour)

	mine := relatedTask("RolloutMine", "req1")
	mine.Priority = model.PriorityLow
	mine.DueDate = &due
	theirs := relatedTask("RolloutTheirs", "req2")
	theirs.Priority = model.PriorityLow
	theirs.DueDate = &due

	m := dashboard.New(clientSession(), func() time.Time { return now }, 100, 40)
	m, _ = m.Update(dashboard.DataLoadedMsg{
		Requests: []model.Request{
			request("req1", "client1"),
			request("req2", "client2"),
		},
		Tasks:   []model.Task{mine, theirs},
		Widgets: []string{model.WidgetUpcomingTasks},
	})

	out := m.View()
	require.Contains(t, out, "Upcoming Tasks")
	assert.Contains(t, out, "RolloutMine")
	assert.NotContains(t, out, "RolloutTheirs")
}
