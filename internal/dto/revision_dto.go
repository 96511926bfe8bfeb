package dto

import (
	"time"

	"github.com/google/uuid"
)

type RevisionAuthor struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Image    string    `json:"image"`
}

type RevisionResponse struct {
	Id             uuid.UUID      `json:"id"`
	RevisionNumber int            `json:"revision_number"`
	Name           string         `json:"name"`
	Summary        string         `json:"summary"`
	Author         RevisionAuthor `json:"author"`
	CreatedAt      time.Time      `json:"created_at"`
}

type RevisionDetailResponse struct {
	Id             uuid.UUID      `json:"id"`
	RevisionNumber int            `json:"revision_number"`
	Name           string         `json:"name"`
	Content        string         `json:"content"`
	Html           string         `json:"html"`
	Summary        string         `json:"summary"`
	Author         RevisionAuthor `json:"author"`
	CreatedAt      time.Time      `json:"created_at"`
}
