package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChapterRequest struct {
	Name        string    `json:"name" validate:"required"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	BookId      uuid.UUID `json:"book_id" validate:"required"`
}

type CreateChapterResponse struct {
	Id        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sort_order"`
}

type UpdateChapterRequest struct {
	Slug        string
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type ChapterSummary struct {
	Id        uuid.UUID     `json:"id"`
	Slug      string        `json:"slug"`
	Name      string        `json:"name"`
	SortOrder int           `json:"sort_order"`
	Pages     []PageSummary `json:"pages"`
}

type ShowChapterResponse struct {
	Id          uuid.UUID     `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	BookId      uuid.UUID     `json:"book_id"`
	SortOrder   int           `json:"sort_order"`
	Pages       []PageSummary `json:"pages"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at"`
}
