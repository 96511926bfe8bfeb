package service

import (
	"context"

	"bookhive-be/internal/access"
	"bookhive-be/internal/dto"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReorderService interface {
	Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderRequest) (*dto.ReorderResponse, error)
}

// reorderService assigns sort_order = position index for the id list the
// caller sends. The list is treated as the full sibling set; ids omitted from
// it keep their previous sort_order untouched.
type reorderService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *access.Resolver
}

func NewReorderService(uowFactory unitofwork.RepositoryFactory, resolver *access.Resolver) IReorderService {
	return &reorderService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (s *reorderService) Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderRequest) (*dto.ReorderResponse, error) {
	switch req.Type {
	case dto.ReorderTypeChapters, dto.ReorderTypePages:
	default:
		return nil, apperr.InvalidRequest("unknown reorder type: " + req.Type)
	}
	if len(req.Items) == 0 {
		return nil, apperr.InvalidRequest("items must not be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	switch req.Type {
	case dto.ReorderTypeChapters:
		err = s.reorderChapters(ctx, uow, principal, req.Items)
	case dto.ReorderTypePages:
		err = s.reorderPages(ctx, uow, principal, req.Items)
	}
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ReorderResponse{Updated: len(req.Items)}, nil
}

func (s *reorderService) reorderChapters(ctx context.Context, uow unitofwork.UnitOfWork, principal *entity.User, items []uuid.UUID) error {
	chapters, err := uow.ChapterRepository().FindAll(ctx, specification.ByIDs{IDs: items})
	if err != nil {
		return err
	}
	if len(chapters) != len(items) {
		return apperr.NotFound("one or more chapters not found")
	}

	byId := make(map[uuid.UUID]*entity.Chapter, len(chapters))
	for _, c := range chapters {
		byId[c.Id] = c
	}

	// Chapters carry no scope of their own; management follows the owning book.
	bookScopes := make(map[uuid.UUID]access.Scope)
	for _, c := range chapters {
		if _, ok := bookScopes[c.BookId]; ok {
			continue
		}
		book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: c.BookId})
		if err != nil {
			return err
		}
		if book == nil {
			return apperr.NotFound("book not found")
		}
		bookScopes[c.BookId] = access.ScopeOf(book.TeamId, book.CreatedBy)
	}
	for _, c := range chapters {
		if !s.resolver.CanManage(ctx, principal, bookScopes[c.BookId]) {
			return apperr.AccessDenied("you do not have access to this book")
		}
	}

	for index, id := range items {
		if err := uow.ChapterRepository().UpdateSortOrder(ctx, byId[id].Id, index); err != nil {
			return err
		}
	}
	return nil
}

func (s *reorderService) reorderPages(ctx context.Context, uow unitofwork.UnitOfWork, principal *entity.User, items []uuid.UUID) error {
	pages, err := uow.PageRepository().FindAll(ctx, specification.ByIDs{IDs: items})
	if err != nil {
		return err
	}
	if len(pages) != len(items) {
		return apperr.NotFound("one or more pages not found")
	}

	byId := make(map[uuid.UUID]*entity.Page, len(pages))
	for _, p := range pages {
		byId[p.Id] = p
	}

	for _, p := range pages {
		scope, err := pageScope(ctx, uow, p)
		if err != nil {
			return err
		}
		if !s.resolver.CanManage(ctx, principal, scope) {
			return apperr.AccessDenied("you do not have access to this page")
		}
	}

	for index, id := range items {
		if err := uow.PageRepository().UpdateSortOrder(ctx, byId[id].Id, index); err != nil {
			return err
		}
	}
	return nil
}
