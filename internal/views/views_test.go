package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/model"
	"contactflow/internal/views"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func req(id, clientID, status, priority string, created time.Time) model.Request {
	r := model.Request{ClientID: clientID, Status: status, Priority: priority}
	r.ID = id
	r.CreatedAt = created
	r.UpdatedAt = created
	return r
}

func rated(id string, rating int) model.Request {
	r := req(id, "client1", model.StatusCompleted, model.PriorityLow, now)
	r.Feedback = &model.Feedback{Rating: rating}
	return r
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		requests []model.Request
		want     string
	}{
		{
			name: "mixed ratings round to one decimal",
			requests: []model.Request{
				rated("req1", 4),
				rated("req2", 5),
				rated("req3", 3),
			},
			want: "4.0",
		},
		{
			name: "unrated requests are excluded",
			requests: []model.Request{
				rated("req1", 5),
				req("req2", "client1", model.StatusPending, model.PriorityLow, now),
			},
			want: "5.0",
		},
		{
			name:     "no feedback at all",
			requests: []model.Request{req("req1", "client1", model.StatusPending, model.PriorityLow, now)},
			want:     "0.0",
		},
		{
			name: "non-integer mean",
			requests: []model.Request{
				rated("req1", 4),
				rated("req2", 5),
			},
			want: "4.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, views.AverageRating(tt.requests))
		})
	}
}

func TestComputeStats(t *testing.T) {
	stats := views.ComputeStats([]model.Request{
		req("req1", "c", model.StatusPending, model.PriorityLow, now),
		req("req2", "c", model.StatusPending, model.PriorityLow, now),
		req("req3", "c", model.StatusInProgress, model.PriorityLow, now),
		rated("req4", 4),
	})

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, "4.0", stats.AvgRating)
}

func TestSatisfactionBuckets(t *testing.T) {
	buckets := views.SatisfactionBuckets([]model.Request{
		rated("req1", 5),
		rated("req2", 5),
		rated("req3", 2),
		req("req4", "c", model.StatusPending, model.PriorityLow, now),
	})

	assert.Equal(t, [5]int{0, 1, 0, 0, 2}, buckets)
}

func TestOwnedBy(t *testing.T) {
	owned := views.OwnedBy([]model.Request{
		req("req1", "client1", model.StatusPending, model.PriorityLow, now),
		req("req2", "client2", model.StatusPending, model.PriorityLow, now),
		req("req3", "client1", model.StatusPending, model.PriorityLow, now),
	}, "client1")

	require.Len(t, owned, 2)
	assert.Equal(t, "req1", owned[0].ID)
	assert.Equal(t, "req3", owned[1].ID)
}

func TestRecentRequestsOrderAndLimit(t *testing.T) {
	var requests []model.Request
	for i := 0; i < 7; i++ {
		r := req("req"+string(rune('a'+i)), "c", model.StatusPending, model.PriorityLow, now.Add(time.Duration(i)*time.Hour))
		requests = append(requests, r)
	}

	recent := views.RecentRequests(requests)
	require.Len(t, recent, 5)
	assert.Equal(t, "reqg", recent[0].ID)
	assert.Equal(t, "reqc", recent[4].ID)
}

func task(id, relatedRequestID, status, priority string, due *time.Time) model.Task {
	t := model.Task{Title: id, RelatedRequestID: relatedRequestID, Status: status, Priority: priority, DueDate: due}
	t.ID = id
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func TestHighPriorityTasks(t *testing.T) {
	owned := []model.Request{
		req("req1", "client1", model.StatusPending, model.PriorityLow, now),
	}
	tasks := []model.Task{
		task("low", "req1", model.TaskStatusTodo, model.PriorityLow, nil),
		task("high-late", "req1", model.TaskStatusTodo, model.PriorityHigh, ptr(now.Add(72*time.Hour))),
		task("urgent-nodue", "req1", model.TaskStatusTodo, model.PriorityUrgent, nil),
		task("urgent-soon", "req1", model.TaskStatusInProgress, model.PriorityUrgent, ptr(now.Add(24*time.Hour))),
		task("high-soon", "req1", model.TaskStatusTodo, model.PriorityHigh, ptr(now.Add(24*time.Hour))),
		task("done-urgent", "req1", model.TaskStatusCompleted, model.PriorityUrgent, ptr(now)),
		task("other-client", "req9", model.TaskStatusTodo, model.PriorityUrgent, ptr(now)),
	}

	got := views.HighPriorityTasks(tasks, owned)
	require.Len(t, got, 4)
	// Urgent first, each group by earliest due date, missing dates last.
	assert.Equal(t, "urgent-soon", got[0].ID)
	assert.Equal(t, "urgent-nodue", got[1].ID)
	assert.Equal(t, "high-soon", got[2].ID)
	assert.Equal(t, "high-late", got[3].ID)
}

func TestHighPriorityTasksScopedToOwnedRequests(t *testing.T) {
	requests := []model.Request{
		req("req1", "client1", model.StatusPending, model.PriorityLow, now),
		req("req2", "client2", model.StatusPending, model.PriorityLow, now),
	}
	tasks := []model.Task{
		task("mine", "req1", model.TaskStatusTodo, model.PriorityUrgent, nil),
		task("theirs", "req2", model.TaskStatusTodo, model.PriorityUrgent, nil),
		task("unrelated", "", model.TaskStatusTodo, model.PriorityUrgent, nil),
	}

	got := views.HighPriorityTasks(tasks, views.OwnedBy(requests, "client1"))
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].ID)
}

func TestUpcomingTasksWindow(t *testing.T) {
	owned := []model.Request{
		req("req1", "client1", model.StatusPending, model.PriorityLow, now),
	}
	tasks := []model.Task{
		task("due-today", "req1", model.TaskStatusTodo, model.PriorityLow, ptr(now.Add(2*time.Hour))),
		task("due-week", "req1", model.TaskStatusTodo, model.PriorityLow, ptr(now.Add(7*24*time.Hour))),
		task("too-far", "req1", model.TaskStatusTodo, model.PriorityLow, ptr(now.Add(8*24*time.Hour))),
		task("overdue", "req1", model.TaskStatusTodo, model.PriorityLow, ptr(now.Add(-48*time.Hour))),
		task("no-due", "req1", model.TaskStatusTodo, model.PriorityLow, nil),
		task("done", "req1", model.TaskStatusCompleted, model.PriorityLow, ptr(now.Add(24*time.Hour))),
		task("other-client", "req9", model.TaskStatusTodo, model.PriorityLow, ptr(now.Add(24*time.Hour))),
	}

	got := views.UpcomingTasks(tasks, owned, now)
	require.Len(t, got, 2)
	assert.Equal(t, "due-today", got[0].ID)
	assert.Equal(t, "due-week", got[1].ID)
}

func TestWidgetsFor(t *testing.T) {
	config := model.WidgetConfig{"user-1": {model.WidgetUpcomingTasks}}

	assert.Equal(t, []string{model.WidgetUpcomingTasks}, views.WidgetsFor(config, "user-1"))
	assert.Equal(t, model.DefaultWidgets, views.WidgetsFor(config, "user-2"))
	assert.Equal(t, model.DefaultWidgets, views.WidgetsFor(nil, "user-1"))
}

func TestFilterRequests(t *testing.T) {
	requests := []model.Request{
		req("req1", "c", model.StatusPending, model.PriorityHigh, now.Add(-time.Hour)),
		req("req2", "c", model.StatusCompleted, model.PriorityLow, now.Add(-40*24*time.Hour)),
		req("req3", "c", model.StatusPending, model.PriorityLow, now.Add(-2*24*time.Hour)),
	}
	requests[0].Title = "Fix the billing page"
	requests[2].Description = "billing is broken again"

	t.Run("status filter", func(t *testing.T) {
		got := views.FilterRequests(requests, views.Filter{Status: model.StatusPending}, now)
		require.Len(t, got, 2)
		// Sorted newest first by creation time.
		assert.Equal(t, "req1", got[0].ID)
		assert.Equal(t, "req3", got[1].ID)
	})

	t.Run("date range excludes old requests", func(t *testing.T) {
		got := views.FilterRequests(requests, views.Filter{DateRange: views.RangeMonth}, now)
		require.Len(t, got, 2)
	})

	t.Run("search is case-insensitive across fields", func(t *testing.T) {
		got := views.FilterRequests(requests, views.Filter{Search: "BILLING"}, now)
		require.Len(t, got, 2)
		assert.Equal(t, "req1", got[0].ID)
		assert.Equal(t, "req3", got[1].ID)
	})

	t.Run("search by id", func(t *testing.T) {
		got := views.FilterRequests(requests, views.Filter{Search: "req2"}, now)
		require.Len(t, got, 1)
	})

	t.Run("all sentinel matches everything", func(t *testing.T) {
		got := views.FilterRequests(requests, views.Filter{Status: "all"}, now)
		assert.Len(t, got, 3)
	})
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		page    int
		perPage int
		want    views.Window
	}{
		{"empty list", 0, 1, 10, views.Window{}},
		{"first of two pages", 12, 1, 10, views.Window{Page: 1, TotalPages: 2, Start: 0, End: 10}},
		{"short last page", 12, 2, 10, views.Window{Page: 2, TotalPages: 2, Start: 10, End: 12}},
		{"page beyond the end clamps", 8, 3, 10, views.Window{Page: 1, TotalPages: 1, Start: 0, End: 8}},
		{"page below one clamps", 8, 0, 10, views.Window{Page: 1, TotalPages: 1, Start: 0, End: 8}},
		{"exact multiple", 20, 2, 10, views.Window{Page: 2, TotalPages: 2, Start: 10, End: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, views.Paginate(tt.total, tt.page, tt.perPage))
		})
	}
}

func TestNotificationsFor(t *testing.T) {
	n1 := model.Notification{UserID: "u1", Title: "old"}
	n1.ID = "notif1"
	n1.CreatedAt = now.Add(-time.Hour)
	n2 := model.Notification{UserID: "u1", Title: "new"}
	n2.ID = "notif2"
	n2.CreatedAt = now
	n3 := model.Notification{UserID: "u2", Title: "other"}
	n3.ID = "notif3"

	got := views.NotificationsFor([]model.Notification{n1, n2, n3}, "u1")
	require.Len(t, got, 2)
	assert.Equal(t, "notif2", got[0].ID)
	assert.Equal(t, "notif1", got[1].ID)

	assert.Equal(t, 2, views.UnreadCount([]model.Notification{n1, n2, n3}, "u1"))
}
