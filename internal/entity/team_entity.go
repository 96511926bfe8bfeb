package entity

import (
	"time"

	"github.com/google/uuid"
)

type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

func (r TeamRole) Valid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleAdmin, TeamRoleMember:
		return true
	}
	return false
}

// CanManageMembers reports whether this membership role may add or remove
// members of the team.
func (r TeamRole) CanManageMembers() bool {
	return r == TeamRoleOwner || r == TeamRoleAdmin
}

type Team struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TeamMember struct {
	Id        uuid.UUID
	TeamId    uuid.UUID
	UserId    uuid.UUID
	Role      TeamRole
	CreatedAt time.Time
}
