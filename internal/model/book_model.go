package model

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	ShelfId     *uuid.UUID `gorm:"type:uuid;index"`
	TeamId      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}
