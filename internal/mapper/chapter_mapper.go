package mapper

import (
	"time"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/model"
)

type ChapterMapper struct{}

func NewChapterMapper() *ChapterMapper {
	return &ChapterMapper{}
}

func (m *ChapterMapper) ToEntity(c *model.Chapter) *entity.Chapter {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Chapter{
		Id:        c.Id,
		Slug:      c.Slug,
		Name:      c.Name,
		BookId:    c.BookId,
		SortOrder: c.SortOrder,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChapterMapper) ToModel(c *entity.Chapter) *model.Chapter {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Chapter{
		Id:        c.Id,
		Slug:      c.Slug,
		Name:      c.Name,
		BookId:    c.BookId,
		SortOrder: c.SortOrder,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChapterMapper) ToEntities(chapters []*model.Chapter) []*entity.Chapter {
	entities := make([]*entity.Chapter, len(chapters))
	for i, c := range chapters {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
