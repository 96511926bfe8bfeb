package dto

import "github.com/google/uuid"

type ImportURLRequest struct {
	Url    string     `json:"url" validate:"required,url"`
	TeamId *uuid.UUID `json:"team_id"`
}

type ImportURLResponse struct {
	BookId   uuid.UUID `json:"book_id"`
	BookSlug string    `json:"book_slug"`
	Chapters int       `json:"chapters"`
	Pages    int       `json:"pages"`
}
