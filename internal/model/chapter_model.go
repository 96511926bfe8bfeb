package model

import (
	"time"

	"github.com/google/uuid"
)

type Chapter struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	BookId    uuid.UUID `gorm:"type:uuid;not null;index"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Chapter) TableName() string {
	return "chapters"
}
