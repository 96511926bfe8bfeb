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

type ShelfRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShelfMapper
}

func NewShelfRepository(db *gorm.DB) contract.ShelfRepository {
	return &ShelfRepositoryImpl{
		db:     db,
		mapper: mapper.NewShelfMapper(),
	}
}

func (r *ShelfRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShelfRepositoryImpl) Create(ctx context.Context, shelf *entity.Shelf) error {
	m := r.mapper.ToModel(shelf)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*shelf = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShelfRepositoryImpl) Update(ctx context.Context, shelf *entity.Shelf) error {
	m := r.mapper.ToModel(shelf)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*shelf = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShelfRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shelf{}, id).Error
}

func (r *ShelfRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shelf, error) {
	var m model.Shelf
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ShelfRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shelf, error) {
	var models []*model.Shelf
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ShelfRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Shelf{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
