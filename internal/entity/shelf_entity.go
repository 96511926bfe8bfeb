package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shelf is the top-level grouping of books. A shelf with TeamId set is visible
// to every member of that team; with TeamId absent it is personal to CreatedBy.
type Shelf struct {
	Id          uuid.UUID
	Slug        string
	Name        string
	Description string
	TeamId      *uuid.UUID
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
