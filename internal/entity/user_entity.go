package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
	UserRoleViewer UserRole = "viewer"
)

// Valid reports whether the role is one of the closed set. Free-form role
// strings are rejected at the boundary so invalid states never reach storage.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEditor, UserRoleViewer:
		return true
	}
	return false
}

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash *string
	FullName     string
	Role         UserRole
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsAdmin reports whether the user carries the global admin role. The global
// admin bypass applies to read access only, never to team membership management.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}
