package service

import (
	"context"
	"testing"

	"bookhive-be/internal/access"
	"bookhive-be/internal/directory"
	"bookhive-be/internal/dto"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamFixture() (*fakeStore, ITeamService, *entity.User) {
	store := newFakeStore()
	factory := &fakeFactory{store: store}
	dir := directory.NewDirectory(factory)
	resolver := access.NewResolver(dir)

	user := &entity.User{Id: uuid.New(), Email: "founder@example.com", FullName: "Founder", Role: entity.UserRoleEditor}
	store.users[user.Id] = user

	return store, NewTeamService(factory, resolver, dir, nil), user
}

func TestCreateTeamMakesCreatorOwner(t *testing.T) {
	store, svc, user := newTeamFixture()

	res, err := svc.Create(context.Background(), user.Id, &dto.CreateTeamRequest{Name: "Platform Docs"})
	require.NoError(t, err)
	assert.Equal(t, "platform-docs", res.Slug)

	var member *entity.TeamMember
	for _, m := range store.members {
		member = m
	}
	require.NotNil(t, member)
	assert.Equal(t, user.Id, member.UserId)
	assert.Equal(t, entity.TeamRoleOwner, member.Role)
}

func TestAddMemberRequiresManagerRole(t *testing.T) {
	store, svc, owner := newTeamFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.Id, &dto.CreateTeamRequest{Name: "Docs"})
	require.NoError(t, err)

	plain := &entity.User{Id: uuid.New(), Email: "plain@example.com", Role: entity.UserRoleEditor}
	newcomer := &entity.User{Id: uuid.New(), Email: "new@example.com", Role: entity.UserRoleEditor}
	store.users[plain.Id] = plain
	store.users[newcomer.Id] = newcomer

	err = svc.AddMember(ctx, owner.Id, created.Id, &dto.AddTeamMemberRequest{UserId: plain.Id, Role: "member"})
	require.NoError(t, err)

	// A plain member cannot manage membership.
	err = svc.AddMember(ctx, plain.Id, created.Id, &dto.AddTeamMemberRequest{UserId: newcomer.Id, Role: "member"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindAccessDenied, appErr.Kind)
}

func TestAddMemberGlobalAdminGetsNoBypass(t *testing.T) {
	store, svc, owner := newTeamFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.Id, &dto.CreateTeamRequest{Name: "Docs"})
	require.NoError(t, err)

	globalAdmin := &entity.User{Id: uuid.New(), Email: "root@example.com", Role: entity.UserRoleAdmin}
	target := &entity.User{Id: uuid.New(), Email: "t@example.com", Role: entity.UserRoleEditor}
	store.users[globalAdmin.Id] = globalAdmin
	store.users[target.Id] = target

	err = svc.AddMember(ctx, globalAdmin.Id, created.Id, &dto.AddTeamMemberRequest{UserId: target.Id, Role: "member"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindAccessDenied, appErr.Kind)
}

func TestAddMemberRejectsDuplicate(t *testing.T) {
	store, svc, owner := newTeamFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.Id, &dto.CreateTeamRequest{Name: "Docs"})
	require.NoError(t, err)

	target := &entity.User{Id: uuid.New(), Email: "t@example.com", Role: entity.UserRoleEditor}
	store.users[target.Id] = target

	require.NoError(t, svc.AddMember(ctx, owner.Id, created.Id, &dto.AddTeamMemberRequest{UserId: target.Id, Role: "member"}))

	err = svc.AddMember(ctx, owner.Id, created.Id, &dto.AddTeamMemberRequest{UserId: target.Id, Role: "member"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInvalidRequest, appErr.Kind)
}

func TestRemoveMemberKeepsLastOwner(t *testing.T) {
	store, svc, owner := newTeamFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.Id, &dto.CreateTeamRequest{Name: "Docs"})
	require.NoError(t, err)

	err = svc.RemoveMember(ctx, owner.Id, created.Id, owner.Id)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInvalidRequest, appErr.Kind)

	// With a second owner in place the original one may leave.
	second := &entity.User{Id: uuid.New(), Email: "second@example.com", Role: entity.UserRoleEditor}
	store.users[second.Id] = second
	require.NoError(t, svc.AddMember(ctx, owner.Id, created.Id, &dto.AddTeamMemberRequest{UserId: second.Id, Role: "owner"}))

	require.NoError(t, svc.RemoveMember(ctx, owner.Id, created.Id, owner.Id))
}

func TestShowTeamVisibleToMembersAndGlobalAdmin(t *testing.T) {
	store, svc, owner := newTeamFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.Id, &dto.CreateTeamRequest{Name: "Docs"})
	require.NoError(t, err)

	res, err := svc.Show(ctx, owner.Id, created.Slug)
	require.NoError(t, err)
	require.Len(t, res.Members, 1)
	assert.Equal(t, "Founder", res.Members[0].FullName)

	outsider := &entity.User{Id: uuid.New(), Email: "o@example.com", Role: entity.UserRoleEditor}
	store.users[outsider.Id] = outsider
	_, err = svc.Show(ctx, outsider.Id, created.Slug)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindAccessDenied, appErr.Kind)

	globalAdmin := &entity.User{Id: uuid.New(), Email: "root@example.com", Role: entity.UserRoleAdmin}
	store.users[globalAdmin.Id] = globalAdmin
	_, err = svc.Show(ctx, globalAdmin.Id, created.Slug)
	assert.NoError(t, err)
}

func TestTeamIdsOfReturnsIsolatedSlice(t *testing.T) {
	store := newFakeStore()
	dir := directory.NewDirectory(&fakeFactory{store: store})
	ctx := context.Background()

	userId := uuid.New()
	teamA := uuid.New()
	teamB := uuid.New()
	store.members[uuid.New()] = &entity.TeamMember{Id: uuid.New(), TeamId: teamA, UserId: userId, Role: entity.TeamRoleMember}
	store.members[uuid.New()] = &entity.TeamMember{Id: uuid.New(), TeamId: teamB, UserId: userId, Role: entity.TeamRoleMember}

	first, err := dir.TeamIdsOf(ctx, userId)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Scribbling on the returned slice must not reach the cached projection.
	first[0] = uuid.Nil
	first[1] = uuid.Nil

	second, err := dir.TeamIdsOf(ctx, userId)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{teamA, teamB}, second)
}
