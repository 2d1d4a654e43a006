package service

import (
	"fmt"

	"contactflow/internal/apperrors"
	"contactflow/internal/model"
	"contactflow/internal/store"
)

// MarkNotificationRead marks one notification as read.
func (s *Service) MarkNotificationRead(id string) error {
	notif, ok, err := store.GetByID[model.Notification](s.store, store.CollectionNotifications, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("notification %s: %w", id, apperrors.ErrNotFound)
	}
	if notif.Read {
		return nil
	}

	notif.Read = true
	if err := s.store.SaveRecord(store.CollectionNotifications, notif); err != nil {
		return fmt.Errorf("saving notification: %w", err)
	}
	return nil
}

// MarkAllNotificationsRead marks every notification of a user as read in
// one batch write, leaving timestamps untouched.
func (s *Service) MarkAllNotificationsRead(userID string) error {
	notifs, err := store.GetAll[model.Notification](s.store, store.CollectionNotifications)
	if err != nil {
		return err
	}

	changed := false
	for i := range notifs {
		if notifs[i].UserID == userID && !notifs[i].Read {
			notifs[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return store.ReplaceAll(s.store, store.CollectionNotifications, notifs)
}

// ClearNotifications removes every notification of a user, keeping other
// users' notifications intact.
func (s *Service) ClearNotifications(userID string) error {
	notifs, err := store.GetAll[model.Notification](s.store, store.CollectionNotifications)
	if err != nil {
		return err
	}

	kept := make([]model.Notification, 0, len(notifs))
	for _, n := range notifs {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notifs) {
		return nil
	}
	return store.ReplaceAll(s.store, store.CollectionNotifications, kept)
}
