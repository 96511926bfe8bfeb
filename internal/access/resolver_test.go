package access

import (
	"context"
	"errors"
	"testing"

	"bookhive-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLookup struct {
	roles map[string]entity.TeamRole
	err   error
}

func membershipKey(userId, teamId uuid.UUID) string {
	return userId.String() + ":" + teamId.String()
}

func (f *fakeLookup) MembershipRole(ctx context.Context, userId, teamId uuid.UUID) (*entity.TeamRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	if role, ok := f.roles[membershipKey(userId, teamId)]; ok {
		r := role
		return &r, nil
	}
	return nil, nil
}

func editor() *entity.User {
	return &entity.User{Id: uuid.New(), Role: entity.UserRoleEditor}
}

func TestCanViewPersonalScope(t *testing.T) {
	resolver := NewResolver(&fakeLookup{})
	owner := editor()
	stranger := editor()

	scope := ScopeOf(nil, owner.Id)

	assert.True(t, resolver.CanView(context.Background(), owner, scope))
	assert.False(t, resolver.CanView(context.Background(), stranger, scope))
	assert.False(t, resolver.CanView(context.Background(), nil, scope))
}

func TestCanViewTeamScope(t *testing.T) {
	teamId := uuid.New()
	member := editor()
	outsider := editor()

	lookup := &fakeLookup{roles: map[string]entity.TeamRole{
		membershipKey(member.Id, teamId): entity.TeamRoleMember,
	}}
	resolver := NewResolver(lookup)

	creator := uuid.New()
	scope := ScopeOf(&teamId, creator)

	assert.True(t, resolver.CanView(context.Background(), member, scope))
	assert.False(t, resolver.CanView(context.Background(), outsider, scope))

	// Adding the outsider to the team flips the answer.
	lookup.roles[membershipKey(outsider.Id, teamId)] = entity.TeamRoleMember
	assert.True(t, resolver.CanView(context.Background(), outsider, scope))
}

func TestCanViewAdminBypass(t *testing.T) {
	resolver := NewResolver(&fakeLookup{})
	admin := &entity.User{Id: uuid.New(), Role: entity.UserRoleAdmin}

	teamId := uuid.New()
	assert.True(t, resolver.CanView(context.Background(), admin, ScopeOf(&teamId, uuid.New())))
	assert.True(t, resolver.CanView(context.Background(), admin, ScopeOf(nil, uuid.New())))
}

func TestCanViewPageFallsBackToBook(t *testing.T) {
	teamId := uuid.New()
	member := editor()
	lookup := &fakeLookup{roles: map[string]entity.TeamRole{
		membershipKey(member.Id, teamId): entity.TeamRoleMember,
	}}
	resolver := NewResolver(lookup)

	// Page itself is personal to someone else, but the owning book belongs to
	// the member's team.
	page := &entity.Page{Id: uuid.New(), CreatedBy: uuid.New()}
	book := &entity.Book{Id: uuid.New(), TeamId: &teamId, CreatedBy: uuid.New()}

	assert.True(t, resolver.CanView(context.Background(), member, PageScope(page, book)))
	assert.False(t, resolver.CanView(context.Background(), member, PageScope(page, nil)))
}

func TestCanViewDirectTeamBlocksBookFallback(t *testing.T) {
	pageTeam := uuid.New()
	bookTeam := uuid.New()
	bookMember := editor()
	pageMember := editor()
	lookup := &fakeLookup{roles: map[string]entity.TeamRole{
		membershipKey(bookMember.Id, bookTeam): entity.TeamRoleMember,
		membershipKey(pageMember.Id, pageTeam): entity.TeamRoleMember,
	}}
	resolver := NewResolver(lookup)

	// A page with its own team is scoped to that team alone; membership in
	// the owning book's team does not reach it.
	page := &entity.Page{Id: uuid.New(), TeamId: &pageTeam, CreatedBy: uuid.New()}
	book := &entity.Book{Id: uuid.New(), TeamId: &bookTeam, CreatedBy: uuid.New()}

	scope := PageScope(page, book)
	assert.False(t, resolver.CanView(context.Background(), bookMember, scope))
	assert.True(t, resolver.CanView(context.Background(), pageMember, scope))
}

func TestCanViewFailsClosedOnLookupError(t *testing.T) {
	resolver := NewResolver(&fakeLookup{err: errors.New("directory down")})
	user := editor()
	teamId := uuid.New()

	assert.False(t, resolver.CanView(context.Background(), user, ScopeOf(&teamId, uuid.New())))
}

func TestCanManageMirrorsCanView(t *testing.T) {
	teamId := uuid.New()
	member := editor()
	lookup := &fakeLookup{roles: map[string]entity.TeamRole{
		membershipKey(member.Id, teamId): entity.TeamRoleMember,
	}}
	resolver := NewResolver(lookup)

	scope := ScopeOf(&teamId, uuid.New())
	assert.Equal(t, resolver.CanView(context.Background(), member, scope), resolver.CanManage(context.Background(), member, scope))
}

func TestCanManageTeam(t *testing.T) {
	teamId := uuid.New()
	owner := editor()
	admin := editor()
	member := editor()
	globalAdmin := &entity.User{Id: uuid.New(), Role: entity.UserRoleAdmin}

	lookup := &fakeLookup{roles: map[string]entity.TeamRole{
		membershipKey(owner.Id, teamId):  entity.TeamRoleOwner,
		membershipKey(admin.Id, teamId):  entity.TeamRoleAdmin,
		membershipKey(member.Id, teamId): entity.TeamRoleMember,
	}}
	resolver := NewResolver(lookup)

	assert.True(t, resolver.CanManageTeam(context.Background(), owner, teamId))
	assert.True(t, resolver.CanManageTeam(context.Background(), admin, teamId))
	assert.False(t, resolver.CanManageTeam(context.Background(), member, teamId))

	// The global admin read bypass never extends to membership management.
	assert.False(t, resolver.CanManageTeam(context.Background(), globalAdmin, teamId))
	assert.False(t, resolver.CanManageTeam(context.Background(), nil, teamId))
}
