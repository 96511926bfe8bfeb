package contract

import (
	"context"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	Update(ctx context.Context, team *entity.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
