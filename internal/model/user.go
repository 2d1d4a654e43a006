package model

import "time"

// User roles.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is an account that can sign in, either an administrator or a client.
// Email is unique across users, compared case-insensitively.
type User struct {
	Meta
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Session is the persisted snapshot of the currently acting user.
// It mirrors the User minus the password field.
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Avatar     string    `json:"avatar,omitempty"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// NewSession builds a session snapshot from a user record.
func NewSession(u User, now time.Time) Session {
	return Session{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Avatar:     u.Avatar,
		LoggedInAt: now,
	}
}
