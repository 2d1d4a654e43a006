package store

// Collection keys. Each is an independently persisted blob.
const (
	CollectionUsers         = "contactflow_users"
	CollectionRequests      = "contactflow_requests"
	CollectionTasks         = "contactflow_tasks"
	CollectionComments      = "contactflow_comments"
	CollectionNotifications = "contactflow_notifications"
	CollectionActivities    = "contactflow_activities"
)

// Slot keys for single values that are not record collections.
const (
	SlotDashboardWidgets = "contactflow_dashboard_widgets"
	SlotSettings         = "contactflow_settings"
	SlotDarkMode         = "darkMode"
)

// idPrefixes maps a collection key to the prefix of its generated ids.
var idPrefixes = map[string]string{
	CollectionUsers:         "user",
	CollectionRequests:      "req",
	CollectionTasks:         "task",
	CollectionComments:      "comment",
	CollectionNotifications: "notif",
	CollectionActivities:    "activity",
}

// IDPrefix returns the id prefix for a collection, defaulting to "rec"
// for collections without a registered prefix.
func IDPrefix(collection string) string {
	if p, ok := idPrefixes[collection]; ok {
		return p
	}
	return "rec"
}
