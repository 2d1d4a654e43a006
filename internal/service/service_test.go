package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/apperrors"
	"contactflow/internal/fanout"
	"contactflow/internal/model"
	"contactflow/internal/service"
	"contactflow/internal/store"
	"contactflow/tests/testutil"
)

func newService(t *testing.T) (*service.Service, *store.Store) {
	t.Helper()
	s := testutil.NewMemoryStore(t)
	svc := service.New(s, fanout.NewRunner(s, nil), nil)
	return svc, s
}

func seedAdmin(t *testing.T, s *store.Store) *model.User {
	t.Helper()
	u := &model.User{Email: "admin@contactflow.com", Name: "Admin User", Role: model.RoleAdmin}
	require.NoError(t, s.SaveRecord(store.CollectionUsers, u))
	return u
}

func clientSession(id string) model.Session {
	return model.Session{ID: id, Name: "John Doe", Role: model.RoleClient}
}

func TestSubmitRequest(t *testing.T) {
	svc, s := newService(t)
	admin := seedAdmin(t, s)

	req, err := svc.SubmitRequest(clientSession("client1"), service.RequestDraft{
		Title:       "Website Redesign",
		Type:        "feature",
		Priority:    model.PriorityHigh,
		Description: "Refresh the landing page",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "client1", req.ClientID)
	assert.Equal(t, model.StatusPending, req.Status)
	assert.NotNil(t, req.Attachments)

	activities, err := store.GetAll[model.Activity](s, store.CollectionActivities)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, `Created request "Website Redesign"`, activities[0].Details)

	notifs, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, admin.ID, notifs[0].UserID)
	assert.Equal(t, "New Service Request", notifs[0].Title)
	assert.Equal(t, req.ID, notifs[0].RelatedID)
}

func TestSubmitRequestValidation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.SubmitRequest(clientSession("client1"), service.RequestDraft{
		Title: "only a title",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"type", "priority", "description"}, ve.Fields)
}

func TestAddComment(t *testing.T) {
	svc, s := newService(t)
	seedAdmin(t, s)

	req, err := svc.SubmitRequest(clientSession("client1"), service.RequestDraft{
		Title: "T", Type: "support", Priority: model.PriorityLow, Description: "D",
	})
	require.NoError(t, err)

	// Age the request so the comment's refresh is observable.
	created := req.UpdatedAt
	s.Clock = func() time.Time { return testutil.FixedTime.Add(time.Hour) }

	comment, err := svc.AddComment(clientSession("client1"), req.ID, "Any update?")
	require.NoError(t, err)
	assert.Equal(t, req.ID, comment.RequestID)

	got, ok, err := store.GetByID[model.Request](s, store.CollectionRequests, req.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.UpdatedAt.After(created))

	notifs, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)
	require.Len(t, notifs, 2)
	assert.Equal(t, "New Comment", notifs[1].Title)
}

func TestAddCommentByAdminDoesNotNotify(t *testing.T) {
	svc, s := newService(t)
	seedAdmin(t, s)

	req, err := svc.SubmitRequest(clientSession("client1"), service.RequestDraft{
		Title: "T", Type: "support", Priority: model.PriorityLow, Description: "D",
	})
	require.NoError(t, err)

	before, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)

	_, err = svc.AddComment(model.Session{ID: "admin1", Role: model.RoleAdmin}, req.ID, "On it.")
	require.NoError(t, err)

	after, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestAddCommentValidation(t *testing.T) {
	svc, s := newService(t)
	seedAdmin(t, s)

	_, err := svc.AddComment(clientSession("client1"), "req-404", "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.AddComment(clientSession("client1"), "req-404", "hello")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSubmitFeedback(t *testing.T) {
	svc, s := newService(t)
	seedAdmin(t, s)

	req, err := svc.SubmitRequest(clientSession("client1"), service.RequestDraft{
		Title: "T", Type: "support", Priority: model.PriorityLow, Description: "D",
	})
	require.NoError(t, err)

	got, err := svc.SubmitFeedback(clientSession("client1"), req.ID, 4, "good work")
	require.NoError(t, err)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, 4, got.Feedback.Rating)
	assert.Equal(t, testutil.FixedTime, got.Feedback.SubmittedAt)

	// A second submission is rejected.
	_, err = svc.SubmitFeedback(clientSession("client1"), req.ID, 5, "even better")
	assert.ErrorIs(t, err, apperrors.ErrFeedbackSubmitted)

	notifs, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)
	require.Len(t, notifs, 2)
	assert.Equal(t, "New Feedback", notifs[1].Title)
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	svc, _ := newService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SubmitFeedback(clientSession("client1"), "req-x", rating, "")
		assert.True(t, apperrors.IsValidation(err), "rating %d", rating)
	}
}

func TestUpdateRequestStatus(t *testing.T) {
	svc, _ := newService(t)

	req, err := svc.SubmitRequest(clientSession("client1"), service.RequestDraft{
		Title: "T", Type: "support", Priority: model.PriorityLow, Description: "D",
	})
	require.NoError(t, err)

	got, err := svc.UpdateRequestStatus(req.ID, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)

	_, err = svc.UpdateRequestStatus("req-404", model.StatusCompleted)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNotificationOperations(t *testing.T) {
	svc, s := newService(t)

	save := func(userID string, read bool) *model.Notification {
		n := &model.Notification{UserID: userID, Title: "n", Read: read}
		require.NoError(t, s.SaveRecord(store.CollectionNotifications, n))
		return n
	}
	mine := save("u1", false)
	save("u1", false)
	theirs := save("u2", false)

	require.NoError(t, svc.MarkNotificationRead(mine.ID))
	got, ok, err := store.GetByID[model.Notification](s, store.CollectionNotifications, mine.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Read)

	require.NoError(t, svc.MarkAllNotificationsRead("u1"))
	all, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)
	for _, n := range all {
		if n.UserID == "u1" {
			assert.True(t, n.Read)
		} else {
			assert.False(t, n.Read)
		}
	}

	require.NoError(t, svc.ClearNotifications("u1"))
	all, err = store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, theirs.ID, all[0].ID)

	assert.ErrorIs(t, svc.MarkNotificationRead("notif-404"), apperrors.ErrNotFound)
}
