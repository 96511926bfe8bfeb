package dto

import "github.com/google/uuid"

const (
	ReorderTypeChapters = "chapters"
	ReorderTypePages    = "pages"
)

type ReorderRequest struct {
	Type  string      `json:"type" validate:"required,oneof=chapters pages"`
	Items []uuid.UUID `json:"items" validate:"required,min=1"`
}

type ReorderResponse struct {
	Updated int `json:"updated"`
}
