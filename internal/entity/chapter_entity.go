package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chapter is an ordered grouping of pages within a book. SortOrder values are
// contiguous starting at 0 among chapters of the same book.
type Chapter struct {
	Id        uuid.UUID
	Slug      string
	Name      string
	BookId    uuid.UUID
	SortOrder int
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
