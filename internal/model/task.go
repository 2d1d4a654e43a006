package model

import "time"

// Task statuses. Tasks use a narrower lifecycle than requests.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Task is an internal work item an admin tracks against a service request.
type Task struct {
	Meta
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	AssignedTo       string     `json:"assignedTo,omitempty"`
	RelatedRequestID string     `json:"relatedRequestId"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
}
