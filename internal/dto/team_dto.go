package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug"`
}

type CreateTeamResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type ShowTeamResponse struct {
	Id        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Slug      string               `json:"slug"`
	Members   []TeamMemberResponse `json:"members"`
	CreatedAt time.Time            `json:"created_at"`
}

type TeamMemberResponse struct {
	UserId   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type AddTeamMemberRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=owner admin member"`
}
