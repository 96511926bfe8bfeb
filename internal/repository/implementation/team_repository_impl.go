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

type TeamRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMapper
}

func NewTeamRepository(db *gorm.DB) contract.TeamRepository {
	return &TeamRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMapper(),
	}
}

func (r *TeamRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, team *entity.Team) error {
	m := r.mapper.ToModel(team)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*team = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) Update(ctx context.Context, team *entity.Team) error {
	m := r.mapper.ToModel(team)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*team = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Team{}, id).Error
}

func (r *TeamRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error) {
	var m model.Team
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TeamRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error) {
	var models []*model.Team
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TeamRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Team{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
