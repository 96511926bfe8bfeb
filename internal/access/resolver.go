package access

import (
	"context"

	"bookhive-be/internal/entity"

	"github.com/google/uuid"
)

// MembershipLookup is the read side of the team directory the resolver needs.
// Satisfied by directory.Directory.
type MembershipLookup interface {
	MembershipRole(ctx context.Context, userId, teamId uuid.UUID) (*entity.TeamRole, error)
}

// Scope captures the ownership fields of a content entity. Exactly one of
// TeamId / personal-CreatedBy determines visibility. Parent carries the owning
// book's scope for pages; the chain is statically bounded at page→book, there
// is no deeper walk.
type Scope struct {
	TeamId    *uuid.UUID
	CreatedBy uuid.UUID
	Parent    *Scope
}

func ScopeOf(teamId *uuid.UUID, createdBy uuid.UUID) Scope {
	return Scope{TeamId: teamId, CreatedBy: createdBy}
}

// PageScope builds the scope for a page, attaching the owning book's scope
// when the page belongs to one.
func PageScope(page *entity.Page, book *entity.Book) Scope {
	s := Scope{TeamId: page.TeamId, CreatedBy: page.CreatedBy}
	if book != nil {
		parent := Scope{TeamId: book.TeamId, CreatedBy: book.CreatedBy}
		s.Parent = &parent
	}
	return s
}

// Resolver answers ownership questions. It never errors: lookups that fail
// deny (fail closed), and existence checks are the caller's responsibility.
type Resolver struct {
	directory MembershipLookup
}

func NewResolver(directory MembershipLookup) *Resolver {
	return &Resolver{directory: directory}
}

// CanView reports whether the principal may read the entity. A nil principal
// always denies; the unauthenticated public reading view deliberately bypasses
// the resolver entirely and must never be routed through here.
func (r *Resolver) CanView(ctx context.Context, principal *entity.User, scope Scope) bool {
	if principal == nil {
		return false
	}
	if r.ownScopeAllows(ctx, principal, scope) {
		return true
	}
	// Only pages without a direct team defer to the owning book, which runs
	// through the same rules. One step only; a page carrying its own TeamId
	// is scoped to that team alone.
	if scope.TeamId == nil && scope.Parent != nil && r.ownScopeAllows(ctx, principal, *scope.Parent) {
		return true
	}
	return principal.IsAdmin()
}

// CanManage mirrors CanView for content entities. It exists as a distinct
// capability so the read-for-viewing exception can never widen into
// management access.
func (r *Resolver) CanManage(ctx context.Context, principal *entity.User, scope Scope) bool {
	return r.CanView(ctx, principal, scope)
}

// CanManageTeam allows only members whose team-scoped role is owner or admin.
// Global admins get no bypass here: the admin override applies to read access
// only, keeping cross-team membership edits impossible through this path.
func (r *Resolver) CanManageTeam(ctx context.Context, principal *entity.User, teamId uuid.UUID) bool {
	if principal == nil {
		return false
	}
	role, err := r.directory.MembershipRole(ctx, principal.Id, teamId)
	if err != nil || role == nil {
		return false
	}
	return role.CanManageMembers()
}

func (r *Resolver) ownScopeAllows(ctx context.Context, principal *entity.User, scope Scope) bool {
	if scope.TeamId == nil {
		return scope.CreatedBy == principal.Id
	}
	role, err := r.directory.MembershipRole(ctx, principal.Id, *scope.TeamId)
	if err != nil {
		return false
	}
	return role != nil
}
