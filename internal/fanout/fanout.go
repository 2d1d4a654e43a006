// Package fanout derives the secondary Activity and Notification writes
// that follow a primary domain mutation. Planning is pure; applying the
// planned effects is sequential and best-effort, with no rollback.
package fanout

import (
	"fmt"
	"log/slog"

	"contactflow/internal/model"
	"contactflow/internal/store"
)

// Effect is one record write, to be applied in order.
type Effect struct {
	Collection string
	Record     model.Mutable
}

// Event is a primary mutation that triggers fan-out.
type Event interface {
	// plan appends this event's effects for the given admin recipients.
	plan(admins []model.User) []Effect
}

// RequestCreated fires after a client's new request has been saved.
type RequestCreated struct {
	Actor   model.Session
	Request *model.Request
}

func (e RequestCreated) plan(admins []model.User) []Effect {
	effects := []Effect{
		activity(e.Actor.ID, model.ActionCreated, "request", e.Request.ID,
			fmt.Sprintf("Created request %q", e.Request.Title)),
	}
	return append(effects, notifyAdmins(admins,
		"New Service Request",
		fmt.Sprintf("%s submitted a new service request: %s", e.Actor.Name, e.Request.Title),
		model.NotificationTypeRequest,
		e.Request.ID,
	)...)
}

// CommentAdded fires after a comment has been saved. The parent request's
// updatedAt refresh is the first planned effect. Admin notifications are
// only produced for client commenters.
type CommentAdded struct {
	Actor   model.Session
	Request *model.Request
	Comment *model.Comment
}

func (e CommentAdded) plan(admins []model.User) []Effect {
	effects := []Effect{
		{Collection: store.CollectionRequests, Record: e.Request},
		activity(e.Actor.ID, model.ActionCommented, "request", e.Request.ID,
			fmt.Sprintf("Commented on request %q", e.Request.Title)),
	}
	if e.Actor.Role != model.RoleClient {
		return effects
	}
	return append(effects, notifyAdmins(admins,
		"New Comment",
		fmt.Sprintf("%s commented on request %q", e.Actor.Name, e.Request.Title),
		model.NotificationTypeComment,
		e.Request.ID,
	)...)
}

// FeedbackSubmitted fires after a request has been re-saved with its
// feedback populated.
type FeedbackSubmitted struct {
	Actor   model.Session
	Request *model.Request
}

func (e FeedbackSubmitted) plan(admins []model.User) []Effect {
	effects := []Effect{
		activity(e.Actor.ID, model.ActionSubmitted, "feedback", e.Request.ID,
			fmt.Sprintf("Submitted feedback for request %q", e.Request.Title)),
	}
	return append(effects, notifyAdmins(admins,
		"New Feedback",
		fmt.Sprintf("%s submitted feedback for request %q", e.Actor.Name, e.Request.Title),
		model.NotificationTypeFeedback,
		e.Request.ID,
	)...)
}

// Plan returns the ordered effects for an event. admins are the existing
// admin users at planning time; non-admin entries are ignored.
func Plan(event Event, admins []model.User) []Effect {
	recipients := make([]model.User, 0, len(admins))
	for _, u := range admins {
		if u.Role == model.RoleAdmin {
			recipients = append(recipients, u)
		}
	}
	return event.plan(recipients)
}

func activity(userID, action, entityType, entityID, details string) Effect {
	return Effect{
		Collection: store.CollectionActivities,
		Record: &model.Activity{
			UserID:     userID,
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID,
			Details:    details,
		},
	}
}

func notifyAdmins(admins []model.User, title, message, typ, relatedID string) []Effect {
	effects := make([]Effect, 0, len(admins))
	for _, admin := range admins {
		effects = append(effects, Effect{
			Collection: store.CollectionNotifications,
			Record: &model.Notification{
				UserID:    admin.ID,
				Title:     title,
				Message:   message,
				Type:      typ,
				RelatedID: relatedID,
			},
		})
	}
	return effects
}

// Runner applies planned effects against a store.
type Runner struct {
	store *store.Store
	log   *slog.Logger
}

// NewRunner creates a Runner. log may be nil to use the default logger.
func NewRunner(s *store.Store, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{store: s, log: log}
}

// Apply executes effects in order, stopping at the first failure. Earlier
// writes are not rolled back; the failure is logged and returned for the
// UI to surface.
func (r *Runner) Apply(effects []Effect) error {
	for i, effect := range effects {
		if err := r.store.SaveRecord(effect.Collection, effect.Record); err != nil {
			r.log.Warn("fan-out step failed",
				"step", i,
				"collection", effect.Collection,
				"error", err,
			)
			return fmt.Errorf("applying fan-out step %d (%s): %w", i, effect.Collection, err)
		}
	}
	return nil
}
