package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateShelfRequest struct {
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	TeamId      *uuid.UUID `json:"team_id"`
}

type CreateShelfResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type UpdateShelfRequest struct {
	Slug        string
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type ShowShelfResponse struct {
	Id          uuid.UUID     `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	TeamId      *uuid.UUID    `json:"team_id"`
	CreatedBy   uuid.UUID     `json:"created_by"`
	Books       []BookSummary `json:"books"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at"`
}
