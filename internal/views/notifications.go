package views

import (
	"sort"

	"contactflow/internal/model"
)

// NotificationsFor returns a user's notifications, newest first.
func NotificationsFor(notifs []model.Notification, userID string) []model.Notification {
	owned := make([]model.Notification, 0, len(notifs))
	for _, n := range notifs {
		if n.UserID == userID {
			owned = append(owned, n)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned
}

// UnreadCount counts a user's unread notifications.
func UnreadCount(notifs []model.Notification, userID string) int {
	count := 0
	for _, n := range notifs {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}
