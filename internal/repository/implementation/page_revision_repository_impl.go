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

type PageRevisionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PageRevisionMapper
}

func NewPageRevisionRepository(db *gorm.DB) contract.PageRevisionRepository {
	return &PageRevisionRepositoryImpl{
		db:     db,
		mapper: mapper.NewPageRevisionMapper(),
	}
}

func (r *PageRevisionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PageRevisionRepositoryImpl) Create(ctx context.Context, revision *entity.PageRevision) error {
	m := r.mapper.ToModel(revision)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*revision = *r.mapper.ToEntity(m)
	return nil
}

func (r *PageRevisionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PageRevision, error) {
	var m model.PageRevision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PageRevisionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageRevision, error) {
	var models []*model.PageRevision
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PageRevisionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PageRevision{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PageRevisionRepositoryImpl) MaxRevisionNumber(ctx context.Context, pageId uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.PageRevision{}).
		Where("page_id = ?", pageId).
		Select("MAX(revision_number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
