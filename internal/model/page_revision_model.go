package model

import (
	"time"

	"github.com/google/uuid"
)

type PageRevision struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PageId         uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_page_revision_number"`
	RevisionNumber int       `gorm:"not null;uniqueIndex:idx_page_revision_number"`
	Content        string    `gorm:"type:text"`
	Html           string    `gorm:"type:text"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (PageRevision) TableName() string {
	return "page_revisions"
}
