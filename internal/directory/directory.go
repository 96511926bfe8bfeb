package directory

import (
	"context"
	"fmt"
	"time"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Directory projects the team membership relation: which teams a user belongs
// to and with what role. Pure read-side lookups, memoized briefly because the
// ownership resolver hits them on every guarded request.
type Directory struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewDirectory(uowFactory unitofwork.RepositoryFactory) *Directory {
	return &Directory{
		uowFactory: uowFactory,
		cache:      gocache.New(30*time.Second, time.Minute),
	}
}

func membershipKey(userId, teamId uuid.UUID) string {
	return fmt.Sprintf("member:%s:%s", userId, teamId)
}

func teamsKey(userId uuid.UUID) string {
	return "teams:" + userId.String()
}

// TeamIdsOf returns the ids of every team the user is a member of. Callers
// get their own slice so mutations can never reach the cached projection.
func (d *Directory) TeamIdsOf(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	if cached, ok := d.cache.Get(teamsKey(userId)); ok {
		return copyIds(cached.([]uuid.UUID)), nil
	}

	uow := d.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.TeamMemberRepository().FindAll(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.TeamId
	}

	d.cache.SetDefault(teamsKey(userId), ids)
	return copyIds(ids), nil
}

func copyIds(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

// MembershipRole returns the user's role within the team, or nil when the
// user is not a member.
func (d *Directory) MembershipRole(ctx context.Context, userId, teamId uuid.UUID) (*entity.TeamRole, error) {
	key := membershipKey(userId, teamId)
	if cached, ok := d.cache.Get(key); ok {
		return cached.(*entity.TeamRole), nil
	}

	uow := d.uowFactory.NewUnitOfWork(ctx)
	member, err := uow.TeamMemberRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByTeamID{TeamID: teamId},
	)
	if err != nil {
		return nil, err
	}

	var role *entity.TeamRole
	if member != nil {
		r := member.Role
		role = &r
	}

	d.cache.SetDefault(key, role)
	return role, nil
}

// Invalidate drops cached projections for a user after a membership mutation.
func (d *Directory) Invalidate(userId, teamId uuid.UUID) {
	d.cache.Delete(teamsKey(userId))
	d.cache.Delete(membershipKey(userId, teamId))
}
