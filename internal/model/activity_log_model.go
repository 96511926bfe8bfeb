package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventType string     `gorm:"type:varchar(100);not null;index"`
	PageId    *uuid.UUID `gorm:"type:uuid;index"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"`
	Detail    string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
