package model

import "time"

// Request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Request statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Request is a service request submitted by a client.
type Request struct {
	Meta

	// ClientID references the User who submitted the request.
	ClientID string `json:"clientId"`

	// Title is the short human-readable summary.
	Title string `json:"title"`

	// Type is the free-form request category (support, feature, billing, ...).
	Type string `json:"type"`

	// Priority is one of the Priority* constants.
	Priority string `json:"priority"`

	// Status is one of the Status* constants. New requests start as pending.
	Status string `json:"status"`

	// Description is the full request body.
	Description string `json:"description"`

	// AssignedTo optionally references the admin User handling the request.
	AssignedTo string `json:"assignedTo,omitempty"`

	// Attachments holds metadata for uploaded files, in upload order.
	Attachments []Attachment `json:"attachments"`

	// Feedback is the client's rating, present once feedback was submitted.
	Feedback *Feedback `json:"feedback,omitempty"`
}

// Attachment is file metadata recorded with a request. The file contents
// themselves are handled outside this system.
type Attachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Feedback is the client's satisfaction rating for a completed request.
type Feedback struct {
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"submittedAt"`
}
