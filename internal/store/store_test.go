package store_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/model"
	"contactflow/internal/store"
)

func newTestStore() *store.Store {
	s := store.New(store.NewMemoryBackend())
	s.Clock = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	counter := 0
	s.NewID = func(collection string) string {
		counter++
		return fmt.Sprintf("%s-%d", store.IDPrefix(collection), counter)
	}
	return s
}

func TestSaveRecordAssignsIDAndTimestamps(t *testing.T) {
	s := newTestStore()

	req := &model.Request{Title: "Broken printer"}
	require.NoError(t, s.SaveRecord(store.CollectionRequests, req))

	assert.Equal(t, "req-1", req.ID)
	assert.False(t, req.CreatedAt.IsZero())
	assert.Equal(t, req.CreatedAt, req.UpdatedAt)
}

func TestSaveRecordKeepsExistingID(t *testing.T) {
	s := newTestStore()

	req := &model.Request{Title: "imported"}
	req.ID = "req-custom"
	require.NoError(t, s.SaveRecord(store.CollectionRequests, req))
	assert.Equal(t, "req-custom", req.ID)
}

func TestSaveRecordReplacesInPlace(t *testing.T) {
	s := newTestStore()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, s.SaveRecord(store.CollectionRequests, &model.Request{Title: title}))
	}

	second, ok, err := store.GetByID[model.Request](s, store.CollectionRequests, "req-2")
	require.NoError(t, err)
	require.True(t, ok)

	second.Title = "second, revised"
	require.NoError(t, s.SaveRecord(store.CollectionRequests, second))

	all, err := store.GetAll[model.Request](s, store.CollectionRequests)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "second, revised", all[1].Title)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "third", all[2].Title)
}

func TestDeleteRecord(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.SaveRecord(store.CollectionRequests, &model.Request{Title: "keep"}))
	require.NoError(t, s.SaveRecord(store.CollectionRequests, &model.Request{Title: "drop"}))

	require.NoError(t, s.DeleteRecord(store.CollectionRequests, "req-2"))

	all, err := store.GetAll[model.Request](s, store.CollectionRequests)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].Title)

	// Deleting a missing id is a no-op.
	require.NoError(t, s.DeleteRecord(store.CollectionRequests, "req-404"))
}

func TestGetAllEmptyCollection(t *testing.T) {
	s := newTestStore()

	all, err := store.GetAll[model.Request](s, store.CollectionRequests)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByIDAbsent(t *testing.T) {
	s := newTestStore()

	_, ok, err := store.GetByID[model.Request](s, store.CollectionRequests, "req-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSlotValues(t *testing.T) {
	s := newTestStore()

	_, ok, err := store.GetValue[model.WidgetConfig](s, store.SlotDashboardWidgets)
	require.NoError(t, err)
	assert.False(t, ok)

	config := model.WidgetConfig{"user-1": {model.WidgetRecentRequests}}
	require.NoError(t, store.PutValue(s, store.SlotDashboardWidgets, config))

	got, ok, err := store.GetValue[model.WidgetConfig](s, store.SlotDashboardWidgets)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, config, got)

	require.NoError(t, s.DeleteValue(store.SlotDashboardWidgets))
	_, ok, err = store.GetValue[model.WidgetConfig](s, store.SlotDashboardWidgets)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplaceAllKeepsTimestamps(t *testing.T) {
	s := newTestStore()

	n := &model.Notification{UserID: "user-1", Title: "hello"}
	require.NoError(t, s.SaveRecord(store.CollectionNotifications, n))
	created := n.CreatedAt

	all, err := store.GetAll[model.Notification](s, store.CollectionNotifications)
	require.NoError(t, err)
	all[0].Read = true
	require.NoError(t, store.ReplaceAll(s, store.CollectionNotifications, all))

	got, ok, err := store.GetByID[model.Notification](s, store.CollectionNotifications, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Read)
	assert.Equal(t, created, got.CreatedAt)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Seed())
	users, err := store.GetAll[model.User](s, store.CollectionUsers)
	require.NoError(t, err)
	require.NotEmpty(t, users)

	require.NoError(t, s.SaveRecord(store.CollectionUsers, &model.User{
		Email: "extra@example.com",
		Name:  "Extra",
		Role:  model.RoleClient,
	}))
	countAfterAdd := len(users) + 1

	require.NoError(t, s.Seed())
	users, err = store.GetAll[model.User](s, store.CollectionUsers)
	require.NoError(t, err)
	assert.Len(t, users, countAfterAdd)
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	backend, err := store.NewSQLiteBackend(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	s := store.New(backend)

	req := &model.Request{Title: "persisted", Status: model.StatusPending}
	require.NoError(t, s.SaveRecord(store.CollectionRequests, req))

	got, ok, err := store.GetByID[model.Request](s, store.CollectionRequests, req.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "persisted", got.Title)

	blob, err := backend.ReadBlob("never_written")
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, backend.DeleteBlob(store.CollectionRequests))
	all, err := store.GetAll[model.Request](s, store.CollectionRequests)
	require.NoError(t, err)
	assert.Empty(t, all)
}
