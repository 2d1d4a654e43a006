// Package service holds the domain operations that combine validation,
// the primary record write, and the fan-out that follows it.
package service

import (
	"fmt"
	"log/slog"

	"contactflow/internal/apperrors"
	"contactflow/internal/fanout"
	"contactflow/internal/model"
	"contactflow/internal/store"
)

// Service wires domain operations to the store and the fan-out runner.
type Service struct {
	store  *store.Store
	runner *fanout.Runner
	log    *slog.Logger
}

// New creates a Service. log may be nil to use the default logger.
func New(s *store.Store, runner *fanout.Runner, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: s, runner: runner, log: log}
}

// RequestDraft carries the user-entered fields of a new service request.
type RequestDraft struct {
	Title       string
	Type        string
	Priority    string
	Description string
	Attachments []model.Attachment
}

// SubmitRequest validates and saves a new pending request for the acting
// client, then records the activity and notifies every admin.
func (s *Service) SubmitRequest(actor model.Session, draft RequestDraft) (*model.Request, error) {
	var missing []string
	if draft.Title == "" {
		missing = append(missing, "title")
	}
	if draft.Type == "" {
		missing = append(missing, "type")
	}
	if draft.Priority == "" {
		missing = append(missing, "priority")
	}
	if draft.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}

	req := &model.Request{
		ClientID:    actor.ID,
		Title:       draft.Title,
		Type:        draft.Type,
		Priority:    draft.Priority,
		Status:      model.StatusPending,
		Description: draft.Description,
		Attachments: draft.Attachments,
	}
	if req.Attachments == nil {
		req.Attachments = []model.Attachment{}
	}
	if err := s.store.SaveRecord(store.CollectionRequests, req); err != nil {
		return nil, fmt.Errorf("saving request: %w", err)
	}

	if err := s.fanOut(fanout.RequestCreated{Actor: actor, Request: req}); err != nil {
		return req, err
	}
	s.log.Info("request submitted", "request", req.ID, "client", actor.ID)
	return req, nil
}

// AddComment validates and saves a comment on a request, refreshes the
// request's updated timestamp, records the activity, and notifies admins
// when the commenter is a client.
func (s *Service) AddComment(actor model.Session, requestID, text string) (*model.Comment, error) {
	if text == "" {
		return nil, apperrors.MissingFields("text")
	}

	req, ok, err := store.GetByID[model.Request](s.store, store.CollectionRequests, requestID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("request %s: %w", requestID, apperrors.ErrNotFound)
	}

	comment := &model.Comment{
		RequestID: requestID,
		UserID:    actor.ID,
		Text:      text,
	}
	if err := s.store.SaveRecord(store.CollectionComments, comment); err != nil {
		return nil, fmt.Errorf("saving comment: %w", err)
	}

	if err := s.fanOut(fanout.CommentAdded{Actor: actor, Request: req, Comment: comment}); err != nil {
		return comment, err
	}
	return comment, nil
}

// SubmitFeedback attaches the client's rating to a request. A request may
// receive feedback once; a second submission fails with
// ErrFeedbackSubmitted.
func (s *Service) SubmitFeedback(actor model.Session, requestID string, rating int, comment string) (*model.Request, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.MissingFields("rating")
	}

	req, ok, err := store.GetByID[model.Request](s.store, store.CollectionRequests, requestID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("request %s: %w", requestID, apperrors.ErrNotFound)
	}
	if req.Feedback != nil {
		return nil, apperrors.ErrFeedbackSubmitted
	}

	req.Feedback = &model.Feedback{
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: s.store.Clock().UTC(),
	}
	if err := s.store.SaveRecord(store.CollectionRequests, req); err != nil {
		return nil, fmt.Errorf("saving feedback: %w", err)
	}

	if err := s.fanOut(fanout.FeedbackSubmitted{Actor: actor, Request: req}); err != nil {
		return req, err
	}
	return req, nil
}

// UpdateRequestStatus moves a request to a new status and refreshes its
// updated timestamp. Used from the admin side.
func (s *Service) UpdateRequestStatus(requestID, status string) (*model.Request, error) {
	req, ok, err := store.GetByID[model.Request](s.store, store.CollectionRequests, requestID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("request %s: %w", requestID, apperrors.ErrNotFound)
	}

	req.Status = status
	if err := s.store.SaveRecord(store.CollectionRequests, req); err != nil {
		return nil, fmt.Errorf("saving request: %w", err)
	}
	return req, nil
}

func (s *Service) fanOut(event fanout.Event) error {
	admins, err := store.GetAll[model.User](s.store, store.CollectionUsers)
	if err != nil {
		return fmt.Errorf("loading fan-out recipients: %w", err)
	}
	return s.runner.Apply(fanout.Plan(event, admins))
}
