package mapper

import (
	"time"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/model"
)

type ShelfMapper struct{}

func NewShelfMapper() *ShelfMapper {
	return &ShelfMapper{}
}

func (m *ShelfMapper) ToEntity(s *model.Shelf) *entity.Shelf {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Shelf{
		Id:          s.Id,
		Slug:        s.Slug,
		Name:        s.Name,
		Description: s.Description,
		TeamId:      s.TeamId,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ShelfMapper) ToModel(s *entity.Shelf) *model.Shelf {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Shelf{
		Id:          s.Id,
		Slug:        s.Slug,
		Name:        s.Name,
		Description: s.Description,
		TeamId:      s.TeamId,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ShelfMapper) ToEntities(shelves []*model.Shelf) []*entity.Shelf {
	entities := make([]*entity.Shelf, len(shelves))
	for i, s := range shelves {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
