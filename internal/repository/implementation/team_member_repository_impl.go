package implementation

import (
	"context"
	"errors"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/mapper"
	"bookhive-be/internal/model"
	"bookhive-be/internal/repository/contract"
	"bookhive-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMemberMapper
}

func NewTeamMemberRepository(db *gorm.DB) contract.TeamMemberRepository {
	return &TeamMemberRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMemberMapper(),
	}
}

func (r *TeamMemberRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TeamMemberRepositoryImpl) Create(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamMemberRepositoryImpl) Update(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamMemberRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TeamMember{}, id).Error
}

func (r *TeamMemberRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error) {
	var m model.TeamMember
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TeamMemberRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var models []*model.TeamMember
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TeamMemberRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TeamMember{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
