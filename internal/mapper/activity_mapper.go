package mapper

import (
	"bookhive-be/internal/entity"
	"bookhive-be/internal/model"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}
	return &entity.ActivityLog{
		Id:        a.Id,
		EventType: a.EventType,
		PageId:    a.PageId,
		UserId:    a.UserId,
		Detail:    a.Detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}
	return &model.ActivityLog{
		Id:        a.Id,
		EventType: a.EventType,
		PageId:    a.PageId,
		UserId:    a.UserId,
		Detail:    a.Detail,
		CreatedAt: a.CreatedAt,
	}
}
