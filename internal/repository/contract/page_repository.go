package contract

import (
	"context"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PageRepository interface {
	Create(ctx context.Context, page *entity.Page) error
	Update(ctx context.Context, page *entity.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Page, error)
	// FindOneForUpdate acquires a row lock (SELECT ... FOR UPDATE) and must be
	// called inside an open transaction. It serializes revision numbering for
	// concurrent edits of the same page.
	FindOneForUpdate(ctx context.Context, specs ...specification.Specification) (*entity.Page, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Page, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
	MaxSortOrder(ctx context.Context, specs ...specification.Specification) (int, error)
}
