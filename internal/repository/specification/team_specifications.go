package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTeamID struct {
	TeamID uuid.UUID
}

func (s ByTeamID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("team_id = ?", s.TeamID)
}

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
