package model

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Content   string     `gorm:"type:text"`
	Html      string     `gorm:"type:text"`
	BookId    *uuid.UUID `gorm:"type:uuid;index"`
	ChapterId *uuid.UUID `gorm:"type:uuid;index"`
	TeamId    *uuid.UUID `gorm:"type:uuid;index"`
	SortOrder int        `gorm:"not null;default:0"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Page) TableName() string {
	return "pages"
}
