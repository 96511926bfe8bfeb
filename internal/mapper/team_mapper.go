package mapper

import (
	"bookhive-be/internal/entity"
	"bookhive-be/internal/model"
)

type TeamMapper struct{}

func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

func (m *TeamMapper) ToEntity(t *model.Team) *entity.Team {
	if t == nil {
		return nil
	}
	return &entity.Team{
		Id:        t.Id,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TeamMapper) ToModel(t *entity.Team) *model.Team {
	if t == nil {
		return nil
	}
	return &model.Team{
		Id:        t.Id,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *TeamMapper) ToEntities(teams []*model.Team) []*entity.Team {
	entities := make([]*entity.Team, len(teams))
	for i, t := range teams {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

type TeamMemberMapper struct{}

func NewTeamMemberMapper() *TeamMemberMapper {
	return &TeamMemberMapper{}
}

func (m *TeamMemberMapper) ToEntity(tm *model.TeamMember) *entity.TeamMember {
	if tm == nil {
		return nil
	}
	return &entity.TeamMember{
		Id:        tm.Id,
		TeamId:    tm.TeamId,
		UserId:    tm.UserId,
		Role:      entity.TeamRole(tm.Role),
		CreatedAt: tm.CreatedAt,
	}
}

func (m *TeamMemberMapper) ToModel(tm *entity.TeamMember) *model.TeamMember {
	if tm == nil {
		return nil
	}
	return &model.TeamMember{
		Id:        tm.Id,
		TeamId:    tm.TeamId,
		UserId:    tm.UserId,
		Role:      string(tm.Role),
		CreatedAt: tm.CreatedAt,
	}
}

func (m *TeamMemberMapper) ToEntities(members []*model.TeamMember) []*entity.TeamMember {
	entities := make([]*entity.TeamMember, len(members))
	for i, tm := range members {
		entities[i] = m.ToEntity(tm)
	}
	return entities
}
