package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownRole        = errors.New("unknown role")
)

// User models a registered identity. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	WorkplaceID  int64     `json:"workplace_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the view of the caller returned by the current-session lookup.
type Profile struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	WorkplaceID int64    `json:"workplace_id"`
	Roles       []string `json:"roles"`
}

// Principal is the already-verified identity carried by a bearer token.
type Principal struct {
	UserID int64
	Roles  Roles
}
