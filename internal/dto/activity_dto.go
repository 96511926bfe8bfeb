package dto

import "github.com/google/uuid"

// PublishActivityMessage crosses the in-process event bus from the write path
// to the activity consumer.
type PublishActivityMessage struct {
	EventType string     `json:"event_type"`
	PageId    *uuid.UUID `json:"page_id"`
	UserId    *uuid.UUID `json:"user_id"`
	Detail    string     `json:"detail"`
}

type ActivityLogResponse struct {
	Id        uuid.UUID  `json:"id"`
	EventType string     `json:"event_type"`
	PageId    *uuid.UUID `json:"page_id"`
	UserId    *uuid.UUID `json:"user_id"`
	Detail    string     `json:"detail"`
	CreatedAt string     `json:"created_at"`
}
