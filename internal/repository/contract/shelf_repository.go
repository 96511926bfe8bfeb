package contract

import (
	"context"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ShelfRepository interface {
	Create(ctx context.Context, shelf *entity.Shelf) error
	Update(ctx context.Context, shelf *entity.Shelf) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shelf, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shelf, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
