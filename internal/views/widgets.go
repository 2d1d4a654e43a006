package views

import (
	"math"
	"sort"
	"time"

	"contactflow/internal/model"
)

// widgetLimit caps how many rows each dashboard widget shows.
const widgetLimit = 5

// RecentRequests returns the most recently updated requests, newest
// first. Used on the client dashboard, where admin-side updates should
// surface the request again.
func RecentRequests(requests []model.Request) []model.Request {
	sorted := make([]model.Request, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	return limit(sorted, widgetLimit)
}

// RecentRequestsByCreated returns the most recently created requests,
// newest first. Used on the admin dashboard, which lists arrivals rather
// than activity.
func RecentRequestsByCreated(requests []model.Request) []model.Request {
	sorted := make([]model.Request, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return limit(sorted, widgetLimit)
}

// HighPriorityTasks returns open urgent and high priority tasks tied to
// one of the given requests, urgent first, then by earliest due date.
// Tasks without a due date sort last within their priority.
func HighPriorityTasks(tasks []model.Task, owned []model.Request) []model.Task {
	ids := requestIDSet(owned)

	picked := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !ids[t.RelatedRequestID] || t.Status == model.TaskStatusCompleted {
			continue
		}
		if t.Priority == model.PriorityUrgent || t.Priority == model.PriorityHigh {
			picked = append(picked, t)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		a, b := picked[i], picked[j]
		if (a.Priority == model.PriorityUrgent) != (b.Priority == model.PriorityUrgent) {
			return a.Priority == model.PriorityUrgent
		}
		return dueBefore(a.DueDate, b.DueDate)
	})
	return limit(picked, widgetLimit)
}

// UpcomingTasks returns open tasks tied to one of the given requests and
// due within the next week, soonest first. A task counts when the whole
// days until its due date, rounded up, fall between zero and seven
// inclusive.
func UpcomingTasks(tasks []model.Task, owned []model.Request, now time.Time) []model.Task {
	ids := requestIDSet(owned)

	picked := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !ids[t.RelatedRequestID] || t.Status == model.TaskStatusCompleted || t.DueDate == nil {
			continue
		}
		days := math.Ceil(t.DueDate.Sub(now).Hours() / 24)
		if days >= 0 && days <= 7 {
			picked = append(picked, t)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].DueDate.Before(*picked[j].DueDate)
	})
	return limit(picked, widgetLimit)
}

// RecentActivity returns the latest activity entries, newest first.
func RecentActivity(activities []model.Activity) []model.Activity {
	sorted := make([]model.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return limit(sorted, widgetLimit)
}

// WidgetsFor returns the ordered widget ids for a user, falling back to
// the default layout when none are saved.
func WidgetsFor(config model.WidgetConfig, userID string) []string {
	if widgets, ok := config[userID]; ok && len(widgets) > 0 {
		return widgets
	}
	return model.DefaultWidgets
}

func requestIDSet(requests []model.Request) map[string]bool {
	ids := make(map[string]bool, len(requests))
	for _, r := range requests {
		ids[r.ID] = true
	}
	return ids
}

func dueBefore(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
