package store

import (
	"fmt"
	"time"

	"contactflow/internal/model"
)

// Seed populates the store with demonstration data when the users
// collection has never been written. Safe to call on every startup.
func (s *Store) Seed() error {
	existing, err := s.backend.ReadBlob(CollectionUsers)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return s.seedSampleData()
}

func (s *Store) seedSampleData() error {
	now := s.Clock().UTC()
	daysAgo := func(d float64) time.Time {
		return now.Add(-time.Duration(d * 24 * float64(time.Hour)))
	}
	meta := func(id string, created, updated time.Time) model.Meta {
		return model.Meta{ID: id, CreatedAt: created, UpdatedAt: updated}
	}
	in2days := now.Add(2 * 24 * time.Hour)
	in4days := now.Add(4 * 24 * time.Hour)
	ago4days := daysAgo(4)

	users := []model.User{
		{
			Meta:     meta("admin1", now, now),
			Email:    "admin@contactflow.com",
			Password: "admin123",
			Name:     "Admin User",
			Role:     model.RoleAdmin,
		},
		{
			Meta:     meta("client1", now, now),
			Email:    "john@example.com",
			Password: "client123",
			Name:     "John Doe",
			Role:     model.RoleClient,
			Company:  "Acme Inc",
			Phone:    "555-123-4567",
		},
		{
			Meta:     meta("client2", now, now),
			Email:    "sarah@example.com",
			Password: "client123",
			Name:     "Sarah Johnson",
			Role:     model.RoleClient,
			Company:  "XYZ Corp",
			Phone:    "555-987-6543",
		},
	}

	requests := []model.Request{
		{
			Meta:        meta("req1", daysAgo(7), daysAgo(2)),
			ClientID:    "client1",
			Title:       "Website Performance Issue",
			Type:        "support",
			Priority:    model.PriorityHigh,
			Status:      model.StatusInProgress,
			Description: "Our website is loading slowly during peak hours. Need assistance optimizing performance.",
			AssignedTo:  "admin1",
			Attachments: []model.Attachment{},
		},
		{
			Meta:        meta("req2", daysAgo(3), daysAgo(3)),
			ClientID:    "client1",
			Title:       "New Feature Request",
			Type:        "feature",
			Priority:    model.PriorityMedium,
			Status:      model.StatusPending,
			Description: "We would like to request a new reporting dashboard that shows monthly trends.",
			Attachments: []model.Attachment{},
		},
		{
			Meta:        meta("req3", daysAgo(14), daysAgo(10)),
			ClientID:    "client2",
			Title:       "Billing Inquiry",
			Type:        "billing",
			Priority:    model.PriorityLow,
			Status:      model.StatusCompleted,
			Description: "I have a question about my last invoice. There seems to be a discrepancy in the charges.",
			AssignedTo:  "admin1",
			Attachments: []model.Attachment{},
			Feedback: &model.Feedback{
				Rating:      4,
				Comment:     "Issue was resolved quickly, but would have appreciated more detailed explanation.",
				SubmittedAt: daysAgo(10),
			},
		},
		{
			Meta:        meta("req4", daysAgo(5), ago4days),
			ClientID:    "client2",
			Title:       "Account Access Problem",
			Type:        "support",
			Priority:    model.PriorityUrgent,
			Status:      model.StatusCompleted,
			Description: "Unable to access my account dashboard. Getting a 403 error when trying to log in.",
			AssignedTo:  "admin1",
			Attachments: []model.Attachment{},
			Feedback: &model.Feedback{
				Rating:      5,
				Comment:     "Excellent support! Problem was fixed within an hour.",
				SubmittedAt: ago4days,
			},
		},
	}

	tasks := []model.Task{
		{
			Meta:             meta("task1", daysAgo(7), daysAgo(2)),
			Title:            "Investigate Website Performance",
			Description:      "Check server logs and run performance tests to identify bottlenecks.",
			Status:           model.TaskStatusInProgress,
			Priority:         model.PriorityHigh,
			AssignedTo:       "admin1",
			RelatedRequestID: "req1",
			DueDate:          &in2days,
		},
		{
			Meta:             meta("task2", daysAgo(6), daysAgo(6)),
			Title:            "Optimize Database Queries",
			Description:      "Review and optimize slow database queries affecting website performance.",
			Status:           model.TaskStatusTodo,
			Priority:         model.PriorityHigh,
			AssignedTo:       "admin1",
			RelatedRequestID: "req1",
			DueDate:          &in4days,
		},
		{
			Meta:             meta("task3", daysAgo(3), daysAgo(3)),
			Title:            "Design New Reporting Dashboard",
			Description:      "Create wireframes for the new reporting dashboard requested by client.",
			Status:           model.TaskStatusTodo,
			Priority:         model.PriorityMedium,
			RelatedRequestID: "req2",
		},
		{
			Meta:             meta("task4", daysAgo(5), ago4days),
			Title:            "Fix Account Access Issue",
			Description:      "Investigate and resolve the 403 error when client tries to log in.",
			Status:           model.TaskStatusCompleted,
			Priority:         model.PriorityUrgent,
			AssignedTo:       "admin1",
			RelatedRequestID: "req4",
			DueDate:          &ago4days,
		},
	}

	comments := []model.Comment{
		{
			Meta:      meta("comment1", daysAgo(6), daysAgo(6)),
			RequestID: "req1",
			UserID:    "admin1",
			Text:      "I've started investigating the performance issues. Will update you soon.",
		},
		{
			Meta:      meta("comment2", daysAgo(5), daysAgo(5)),
			RequestID: "req1",
			UserID:    "client1",
			Text:      "Thank you. Looking forward to your findings.",
		},
		{
			Meta:      meta("comment3", daysAgo(3), daysAgo(3)),
			RequestID: "req1",
			UserID:    "admin1",
			Text:      "Found some slow database queries. Working on optimizing them now.",
		},
		{
			Meta:      meta("comment4", daysAgo(4.5), daysAgo(4.5)),
			RequestID: "req4",
			UserID:    "admin1",
			Text:      "I've reset your account permissions. Please try logging in again.",
		},
		{
			Meta:      meta("comment5", ago4days, ago4days),
			RequestID: "req4",
			UserID:    "client2",
			Text:      "It works now! Thank you for the quick response.",
		},
	}

	notifications := []model.Notification{
		{
			Meta:      meta("notif1", daysAgo(7), daysAgo(7)),
			UserID:    "admin1",
			Title:     "New Service Request",
			Message:   "John Doe submitted a new service request: Website Performance Issue",
			Type:      model.NotificationTypeRequest,
			RelatedID: "req1",
			Read:      true,
		},
		{
			Meta:      meta("notif2", daysAgo(3), daysAgo(3)),
			UserID:    "admin1",
			Title:     "New Service Request",
			Message:   "John Doe submitted a new service request: New Feature Request",
			Type:      model.NotificationTypeRequest,
			RelatedID: "req2",
		},
		{
			Meta:      meta("notif3", daysAgo(6), daysAgo(6)),
			UserID:    "client1",
			Title:     "Request Status Updated",
			Message:   `Your request "Website Performance Issue" has been updated to In Progress`,
			Type:      model.NotificationTypeStatus,
			RelatedID: "req1",
		},
	}

	activities := []model.Activity{
		{
			Meta:       meta("activity1", daysAgo(7), daysAgo(7)),
			UserID:     "admin1",
			Action:     model.ActionCreated,
			EntityType: "task",
			EntityID:   "task1",
			Details:    `Created task "Investigate Website Performance"`,
		},
		{
			Meta:       meta("activity2", daysAgo(6), daysAgo(6)),
			UserID:     "admin1",
			Action:     model.ActionUpdated,
			EntityType: "request",
			EntityID:   "req1",
			Details:    `Updated request "Website Performance Issue" status to In Progress`,
		},
		{
			Meta:       meta("activity3", daysAgo(3), daysAgo(3)),
			UserID:     "client1",
			Action:     model.ActionCreated,
			EntityType: "request",
			EntityID:   "req2",
			Details:    `Created request "New Feature Request"`,
		},
	}

	widgets := model.WidgetConfig{
		"client1": {model.WidgetRecentRequests, model.WidgetHighPriorityTasks, model.WidgetUpcomingTasks},
		"client2": {model.WidgetRecentRequests, model.WidgetRequestStatus, model.WidgetUpcomingTasks},
	}

	if err := ReplaceAll(s, CollectionUsers, users); err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	if err := ReplaceAll(s, CollectionRequests, requests); err != nil {
		return fmt.Errorf("seeding requests: %w", err)
	}
	if err := ReplaceAll(s, CollectionTasks, tasks); err != nil {
		return fmt.Errorf("seeding tasks: %w", err)
	}
	if err := ReplaceAll(s, CollectionComments, comments); err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}
	if err := ReplaceAll(s, CollectionNotifications, notifications); err != nil {
		return fmt.Errorf("seeding notifications: %w", err)
	}
	if err := ReplaceAll(s, CollectionActivities, activities); err != nil {
		return fmt.Errorf("seeding activities: %w", err)
	}
	if err := PutValue(s, SlotDashboardWidgets, widgets); err != nil {
		return fmt.Errorf("seeding widget config: %w", err)
	}

	return nil
}
