package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ShelfId     *uuid.UUID `json:"shelf_id"`
	TeamId      *uuid.UUID `json:"team_id"`
}

type CreateBookResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type UpdateBookRequest struct {
	Slug        string
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	ShelfId     *uuid.UUID `json:"shelf_id"`
}

type BookSummary struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

type ShowBookResponse struct {
	Id          uuid.UUID        `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ShelfId     *uuid.UUID       `json:"shelf_id"`
	TeamId      *uuid.UUID       `json:"team_id"`
	CreatedBy   uuid.UUID        `json:"created_by"`
	Chapters    []ChapterSummary `json:"chapters"`
	Pages       []PageSummary    `json:"pages"` // direct pages, bypassing chapters
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at"`
}
