package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePageRequest struct {
	Name      string     `json:"name" validate:"required"`
	Slug      string     `json:"slug"`
	Content   string     `json:"content"`
	BookId    uuid.UUID  `json:"book_id" validate:"required"`
	ChapterId *uuid.UUID `json:"chapter_id"`
}

type CreatePageResponse struct {
	Id        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sort_order"`
}

type UpdatePageRequest struct {
	Slug    string
	Name    string `json:"name" validate:"required"`
	Content string `json:"content"`
}

type MovePageRequest struct {
	Slug      string
	ChapterId *uuid.UUID `json:"chapter_id"` // nil moves the page directly under its book
}

type PageSummary struct {
	Id        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

type ShowPageResponse struct {
	Id        uuid.UUID  `json:"id"`
	Slug      string     `json:"slug"`
	Name      string     `json:"name"`
	Content   string     `json:"content"`
	Html      string     `json:"html"`
	BookId    uuid.UUID  `json:"book_id"`
	ChapterId *uuid.UUID `json:"chapter_id"`
	SortOrder int        `json:"sort_order"`
	CreatedBy uuid.UUID  `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
