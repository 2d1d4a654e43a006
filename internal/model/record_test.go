package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"contactflow/internal/model"
)

func TestMetaStamp(t *testing.T) {
	first := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	var m model.Meta
	m.Stamp(first)
	assert.Equal(t, first, m.CreatedAt)
	assert.Equal(t, first, m.UpdatedAt)

	m.Stamp(later)
	assert.Equal(t, first, m.CreatedAt, "creation time is set once")
	assert.Equal(t, later, m.UpdatedAt)
}

func TestNewSessionOmitsPassword(t *testing.T) {
	u := model.User{
		Email:    "john@example.com",
		Password: "secret",
		Name:     "John Doe",
		Role:     model.RoleClient,
		Avatar:   "JD",
	}
	u.ID = "client1"

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sess := model.NewSession(u, now)

	assert.Equal(t, "client1", sess.ID)
	assert.Equal(t, "John Doe", sess.Name)
	assert.Equal(t, model.RoleClient, sess.Role)
	assert.Equal(t, now, sess.LoggedInAt)
}
