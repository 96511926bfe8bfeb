package service

import (
	"context"
	"time"

	"bookhive-be/internal/access"
	"bookhive-be/internal/dto"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IBookService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error)
	Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowBookResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookRequest) (*dto.ShowBookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, slug string) error
}

type bookService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *access.Resolver
}

func NewBookService(uowFactory unitofwork.RepositoryFactory, resolver *access.Resolver) IBookService {
	return &bookService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (s *bookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if req.TeamId != nil && !s.resolver.CanManage(ctx, principal, access.ScopeOf(req.TeamId, userId)) {
		return nil, apperr.AccessDenied("you are not a member of this team")
	}

	if req.ShelfId != nil {
		shelf, err := uow.ShelfRepository().FindOne(ctx, specification.ByID{ID: *req.ShelfId})
		if err != nil {
			return nil, err
		}
		if shelf == nil {
			return nil, apperr.NotFound("shelf not found")
		}
		if !s.resolver.CanManage(ctx, principal, access.ScopeOf(shelf.TeamId, shelf.CreatedBy)) {
			return nil, apperr.AccessDenied("you do not have access to this shelf")
		}
	}

	slug, err := resolveSlug(ctx, req.Slug, req.Name, func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.BookRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	book := &entity.Book{
		Id:          uuid.New(),
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
		ShelfId:     req.ShelfId,
		TeamId:      req.TeamId,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.BookRepository().Create(ctx, book); err != nil {
		return nil, err
	}

	return &dto.CreateBookResponse{Id: book.Id, Slug: book.Slug}, nil
}

func (s *bookService) Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	book, err := uow.BookRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}
	if !s.resolver.CanView(ctx, principal, access.ScopeOf(book.TeamId, book.CreatedBy)) {
		return nil, apperr.AccessDenied("you do not have access to this book")
	}

	return buildBookResponse(ctx, uow, book)
}

func (s *bookService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookRequest) (*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	book, err := uow.BookRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}
	if !s.resolver.CanManage(ctx, principal, access.ScopeOf(book.TeamId, book.CreatedBy)) {
		return nil, apperr.AccessDenied("you do not have access to this book")
	}

	if req.ShelfId != nil {
		shelf, err := uow.ShelfRepository().FindOne(ctx, specification.ByID{ID: *req.ShelfId})
		if err != nil {
			return nil, err
		}
		if shelf == nil {
			return nil, apperr.NotFound("shelf not found")
		}
		if !s.resolver.CanManage(ctx, principal, access.ScopeOf(shelf.TeamId, shelf.CreatedBy)) {
			return nil, apperr.AccessDenied("you do not have access to this shelf")
		}
	}

	now := time.Now()
	book.Name = req.Name
	book.Description = req.Description
	book.ShelfId = req.ShelfId
	book.UpdatedAt = &now
	if err := uow.BookRepository().Update(ctx, book); err != nil {
		return nil, err
	}

	return buildBookResponse(ctx, uow, book)
}

// Delete removes the book together with its chapters and pages. Revision rows
// go with their pages via the FK cascade.
func (s *bookService) Delete(ctx context.Context, userId uuid.UUID, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return err
	}

	book, err := uow.BookRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return err
	}
	if book == nil {
		return apperr.NotFound("book not found")
	}
	if !s.resolver.CanManage(ctx, principal, access.ScopeOf(book.TeamId, book.CreatedBy)) {
		return apperr.AccessDenied("you do not have access to this book")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	pages, err := uow.PageRepository().FindAll(ctx, specification.ByBookID{BookID: book.Id})
	if err != nil {
		return err
	}
	for _, p := range pages {
		if err := uow.PageRepository().Delete(ctx, p.Id); err != nil {
			return err
		}
	}

	chapters, err := uow.ChapterRepository().FindAll(ctx, specification.ByBookID{BookID: book.Id})
	if err != nil {
		return err
	}
	for _, c := range chapters {
		if err := uow.ChapterRepository().Delete(ctx, c.Id); err != nil {
			return err
		}
	}

	if err := uow.BookRepository().Delete(ctx, book.Id); err != nil {
		return err
	}

	return uow.Commit()
}
