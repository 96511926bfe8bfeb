package entity

import (
	"time"

	"github.com/google/uuid"
)

// Page is the leaf content unit. Content holds the markdown source, Html the
// rendered output. A page belongs to a chapter and/or directly to a book;
// SortOrder positions it among siblings of the same parent scope.
type Page struct {
	Id        uuid.UUID
	Slug      string
	Name      string
	Content   string
	Html      string
	BookId    *uuid.UUID
	ChapterId *uuid.UUID
	TeamId    *uuid.UUID
	SortOrder int
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
