package unitofwork

import (
	"context"

	"bookhive-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to a single logical operation. Begin
// opens a database transaction; repositories obtained afterwards run on it.
// Multi-step mutations (revision insert + page update, multi-row reorder) must
// run inside one transaction so concurrent readers never observe partial state.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TeamRepository() contract.TeamRepository
	TeamMemberRepository() contract.TeamMemberRepository
	ShelfRepository() contract.ShelfRepository
	BookRepository() contract.BookRepository
	ChapterRepository() contract.ChapterRepository
	PageRepository() contract.PageRepository
	PageRevisionRepository() contract.PageRevisionRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
