package mapper

import (
	"bookhive-be/internal/entity"
	"bookhive-be/internal/model"
)

type PageRevisionMapper struct{}

func NewPageRevisionMapper() *PageRevisionMapper {
	return &PageRevisionMapper{}
}

func (m *PageRevisionMapper) ToEntity(r *model.PageRevision) *entity.PageRevision {
	if r == nil {
		return nil
	}
	return &entity.PageRevision{
		Id:             r.Id,
		PageId:         r.PageId,
		RevisionNumber: r.RevisionNumber,
		Content:        r.Content,
		Html:           r.Html,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *PageRevisionMapper) ToModel(r *entity.PageRevision) *model.PageRevision {
	if r == nil {
		return nil
	}
	return &model.PageRevision{
		Id:             r.Id,
		PageId:         r.PageId,
		RevisionNumber: r.RevisionNumber,
		Content:        r.Content,
		Html:           r.Html,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *PageRevisionMapper) ToEntities(revisions []*model.PageRevision) []*entity.PageRevision {
	entities := make([]*entity.PageRevision, len(revisions))
	for i, r := range revisions {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
