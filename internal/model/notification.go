package model

// Notification types.
const (
	NotificationTypeRequest  = "request"
	NotificationTypeComment  = "comment"
	NotificationTypeFeedback = "feedback"
	NotificationTypeStatus   = "status"
)

// Notification is an alert addressed to a single user about activity on
// an entity they care about. RelatedID references the entity by id; a
// dangling reference renders as "unknown" rather than failing.
type Notification struct {
	Meta
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	RelatedID string `json:"relatedId,omitempty"`
	Read      bool   `json:"read"`
}
