package entity

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	Id          uuid.UUID
	Slug        string
	Name        string
	Description string
	ShelfId     *uuid.UUID
	TeamId      *uuid.UUID
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
