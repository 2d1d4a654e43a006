package model

// Dashboard widget identifiers.
const (
	WidgetRecentRequests    = "recentRequests"
	WidgetHighPriorityTasks = "highPriorityTasks"
	WidgetUpcomingTasks     = "upcomingTasks"
	WidgetRequestStatus     = "requestStatus"
)

// WidgetConfig maps a user id to the ordered widget ids shown on their
// dashboard. Stored as a single slot value, not a record collection.
type WidgetConfig map[string][]string

// DefaultWidgets is the dashboard layout used when a user has no saved
// configuration.
var DefaultWidgets = []string{
	WidgetRecentRequests,
	WidgetHighPriorityTasks,
	WidgetUpcomingTasks,
}
