package contract

import (
	"context"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/specification"

	"github.com/google/uuid"
)

// PageRevisionRepository is append-only: revisions are inserted and read,
// never updated or deleted.
type PageRevisionRepository interface {
	Create(ctx context.Context, revision *entity.PageRevision) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PageRevision, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageRevision, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// MaxRevisionNumber returns 0 when the page has no revisions yet.
	MaxRevisionNumber(ctx context.Context, pageId uuid.UUID) (int, error)
}
