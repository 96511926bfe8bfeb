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

type IChapterService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateChapterRequest) (*dto.CreateChapterResponse, error)
	Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowChapterResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateChapterRequest) (*dto.ShowChapterResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, slug string) error
}

type chapterService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *access.Resolver
}

func NewChapterService(uowFactory unitofwork.RepositoryFactory, resolver *access.Resolver) IChapterService {
	return &chapterService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// bookFor loads the owning book and checks the caller may manage it. Chapters
// carry no scope of their own.
func (s *chapterService) bookFor(ctx context.Context, uow unitofwork.UnitOfWork, principal *entity.User, bookId uuid.UUID) (*entity.Book, error) {
	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: bookId})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}
	if !s.resolver.CanManage(ctx, principal, access.ScopeOf(book.TeamId, book.CreatedBy)) {
		return nil, apperr.AccessDenied("you do not have access to this book")
	}
	return book, nil
}

func (s *chapterService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateChapterRequest) (*dto.CreateChapterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if _, err := s.bookFor(ctx, uow, principal, req.BookId); err != nil {
		return nil, err
	}

	slug, err := resolveSlug(ctx, req.Slug, req.Name, func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.ChapterRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	// New chapters append after the book's current last chapter.
	maxOrder, err := uow.ChapterRepository().MaxSortOrder(ctx, specification.ByBookID{BookID: req.BookId})
	if err != nil {
		return nil, err
	}

	chapter := &entity.Chapter{
		Id:        uuid.New(),
		Slug:      slug,
		Name:      req.Name,
		BookId:    req.BookId,
		SortOrder: maxOrder + 1,
		CreatedBy: userId,
		CreatedAt: time.Now(),
	}
	if err := uow.ChapterRepository().Create(ctx, chapter); err != nil {
		return nil, err
	}

	return &dto.CreateChapterResponse{Id: chapter.Id, Slug: chapter.Slug, SortOrder: chapter.SortOrder}, nil
}

func (s *chapterService) Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowChapterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, apperr.NotFound("chapter not found")
	}

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: chapter.BookId})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}
	if !s.resolver.CanView(ctx, principal, access.ScopeOf(book.TeamId, book.CreatedBy)) {
		return nil, apperr.AccessDenied("you do not have access to this book")
	}

	chapterId := chapter.Id
	pages, err := uow.PageRepository().FindAll(ctx,
		specification.ByChapterID{ChapterID: &chapterId},
		specification.OrderBySortOrder{},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ShowChapterResponse{
		Id:        chapter.Id,
		Slug:      chapter.Slug,
		Name:      chapter.Name,
		BookId:    chapter.BookId,
		SortOrder: chapter.SortOrder,
		Pages:     make([]dto.PageSummary, len(pages)),
		CreatedAt: chapter.CreatedAt,
		UpdatedAt: chapter.UpdatedAt,
	}
	for i, p := range pages {
		res.Pages[i] = dto.PageSummary{Id: p.Id, Slug: p.Slug, Name: p.Name, SortOrder: p.SortOrder}
	}
	return res, nil
}

func (s *chapterService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateChapterRequest) (*dto.ShowChapterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, apperr.NotFound("chapter not found")
	}
	if _, err := s.bookFor(ctx, uow, principal, chapter.BookId); err != nil {
		return nil, err
	}

	now := time.Now()
	chapter.Name = req.Name
	chapter.UpdatedAt = &now
	if err := uow.ChapterRepository().Update(ctx, chapter); err != nil {
		return nil, err
	}

	return s.Show(ctx, userId, chapter.Slug)
}

// Delete removes the chapter and reparents its pages directly under the book,
// appended after the book's existing direct pages. Page content survives
// chapter reorganization.
func (s *chapterService) Delete(ctx context.Context, userId uuid.UUID, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return err
	}

	chapter, err := uow.ChapterRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return err
	}
	if chapter == nil {
		return apperr.NotFound("chapter not found")
	}
	if _, err := s.bookFor(ctx, uow, principal, chapter.BookId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	chapterId := chapter.Id
	pages, err := uow.PageRepository().FindAll(ctx,
		specification.ByChapterID{ChapterID: &chapterId},
		specification.OrderBySortOrder{},
	)
	if err != nil {
		return err
	}

	if len(pages) > 0 {
		maxOrder, err := uow.PageRepository().MaxSortOrder(ctx,
			specification.ByBookID{BookID: chapter.BookId},
			specification.ByChapterID{ChapterID: nil},
		)
		if err != nil {
			return err
		}
		for i, p := range pages {
			p.ChapterId = nil
			p.SortOrder = maxOrder + 1 + i
			if err := uow.PageRepository().Update(ctx, p); err != nil {
				return err
			}
		}
	}

	if err := uow.ChapterRepository().Delete(ctx, chapter.Id); err != nil {
		return err
	}

	return uow.Commit()
}
