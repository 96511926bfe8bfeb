package contract

import (
	"context"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChapterRepository interface {
	Create(ctx context.Context, chapter *entity.Chapter) error
	Update(ctx context.Context, chapter *entity.Chapter) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chapter, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chapter, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateSortOrder touches only the sort_order column so reorder passes do
	// not race with content updates on other columns.
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
	MaxSortOrder(ctx context.Context, specs ...specification.Specification) (int, error)
}
