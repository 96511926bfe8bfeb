package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Team) TableName() string {
	return "teams"
}

type TeamMember struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TeamId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_team_member"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_team_member"`
	Role      string    `gorm:"type:varchar(50);not null;default:'member'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
