package model

// Activity actions.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionCommented = "commented"
	ActionSubmitted = "submitted"
	ActionDeleted   = "deleted"
)

// Activity is an audit-trail entry recording that a user acted on an entity.
type Activity struct {
	Meta
	UserID     string `json:"userId"`
	Action     string `json:"action"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Details    string `json:"details"`
}
