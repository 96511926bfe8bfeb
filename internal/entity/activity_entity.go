package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog records a content mutation observed on the event bus. Written by
// the activity consumer, read by nothing in the request path.
type ActivityLog struct {
	Id        uuid.UUID
	EventType string
	PageId    *uuid.UUID
	UserId    *uuid.UUID
	Detail    string
	CreatedAt time.Time
}
