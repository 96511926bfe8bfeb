package service

import (
	"context"
	"time"

	"bookhive-be/internal/access"
	"bookhive-be/internal/dto"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/pkg/markdown"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"
	pktNats "bookhive-be/pkg/nats"

	"github.com/google/uuid"
)

type IPageService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error)
	Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowPageResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePageRequest) (*dto.ShowPageResponse, error)
	Move(ctx context.Context, userId uuid.UUID, req *dto.MovePageRequest) (*dto.ShowPageResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, slug string) error
}

type pageService struct {
	uowFactory       unitofwork.RepositoryFactory
	resolver         *access.Resolver
	renderer         *markdown.Renderer
	revisionService  IRevisionService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewPageService(
	uowFactory unitofwork.RepositoryFactory,
	resolver *access.Resolver,
	renderer *markdown.Renderer,
	revisionService IRevisionService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IPageService {
	return &pageService{
		uowFactory:       uowFactory,
		resolver:         resolver,
		renderer:         renderer,
		revisionService:  revisionService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *pageService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: req.BookId})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}
	if !s.resolver.CanManage(ctx, principal, access.ScopeOf(book.TeamId, book.CreatedBy)) {
		return nil, apperr.AccessDenied("you do not have access to this book")
	}

	if req.ChapterId != nil {
		chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByID{ID: *req.ChapterId})
		if err != nil {
			return nil, err
		}
		if chapter == nil {
			return nil, apperr.NotFound("chapter not found")
		}
		if chapter.BookId != book.Id {
			return nil, apperr.InvalidRequest("chapter does not belong to this book")
		}
	}

	slug, err := resolveSlug(ctx, req.Slug, req.Name, func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(req.Content)
	if err != nil {
		return nil, err
	}

	// New pages append after the last sibling of the same parent scope.
	maxOrder, err := uow.PageRepository().MaxSortOrder(ctx,
		specification.ByBookID{BookID: book.Id},
		specification.ByChapterID{ChapterID: req.ChapterId},
	)
	if err != nil {
		return nil, err
	}

	bookId := book.Id
	page := &entity.Page{
		Id:        uuid.New(),
		Slug:      slug,
		Name:      req.Name,
		Content:   req.Content,
		Html:      html,
		BookId:    &bookId,
		ChapterId: req.ChapterId,
		TeamId:    book.TeamId,
		SortOrder: maxOrder + 1,
		CreatedBy: userId,
		CreatedAt: time.Now(),
	}
	if err := uow.PageRepository().Create(ctx, page); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, "PAGE_CREATED", &page.Id, &userId, page.Name)
	return &dto.CreatePageResponse{Id: page.Id, Slug: page.Slug, SortOrder: page.SortOrder}, nil
}

func (s *pageService) Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, apperr.NotFound("page not found")
	}

	scope, err := pageScope(ctx, uow, page)
	if err != nil {
		return nil, err
	}
	if !s.resolver.CanView(ctx, principal, scope) {
		return nil, apperr.AccessDenied("you do not have access to this page")
	}

	return pageResponse(page), nil
}

func (s *pageService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePageRequest) (*dto.ShowPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, apperr.NotFound("page not found")
	}

	scope, err := pageScope(ctx, uow, page)
	if err != nil {
		return nil, err
	}
	if !s.resolver.CanManage(ctx, principal, scope) {
		return nil, apperr.AccessDenied("you do not have access to this page")
	}

	// Content edits go through the revision store, which snapshots the
	// pre-edit content before applying the new one. The name change is only
	// persisted afterwards so a failed content edit leaves nothing behind.
	if page.Content != req.Content {
		html, err := s.renderer.Render(req.Content)
		if err != nil {
			return nil, err
		}
		if _, err := s.revisionService.RecordEdit(ctx, page.Id, req.Content, html, userId); err != nil {
			return nil, err
		}
		now := time.Now()
		page.Content = req.Content
		page.Html = html
		page.UpdatedAt = &now
	}

	if page.Name != req.Name {
		now := time.Now()
		page.Name = req.Name
		page.UpdatedAt = &now
		if err := uow.PageRepository().Update(ctx, page); err != nil {
			return nil, err
		}
	}

	return pageResponse(page), nil
}

// Move reparents the page between a chapter and its book root (or another
// chapter of the same book) and resequences both the old and the new sibling
// sets in one transaction.
func (s *pageService) Move(ctx context.Context, userId uuid.UUID, req *dto.MovePageRequest) (*dto.ShowPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, apperr.NotFound("page not found")
	}
	if page.BookId == nil {
		return nil, apperr.InvalidRequest("page does not belong to a book")
	}

	scope, err := pageScope(ctx, uow, page)
	if err != nil {
		return nil, err
	}
	if !s.resolver.CanManage(ctx, principal, scope) {
		return nil, apperr.AccessDenied("you do not have access to this page")
	}

	if req.ChapterId != nil {
		chapter, err := uow.ChapterRepository().FindOne(ctx, specification.ByID{ID: *req.ChapterId})
		if err != nil {
			return nil, err
		}
		if chapter == nil {
			return nil, apperr.NotFound("chapter not found")
		}
		if chapter.BookId != *page.BookId {
			return nil, apperr.InvalidRequest("chapter does not belong to the page's book")
		}
	}

	oldChapterId := page.ChapterId

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Append at the end of the destination set first, then close the gap the
	// page left behind.
	maxOrder, err := uow.PageRepository().MaxSortOrder(ctx,
		specification.ByBookID{BookID: *page.BookId},
		specification.ByChapterID{ChapterID: req.ChapterId},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	page.ChapterId = req.ChapterId
	page.SortOrder = maxOrder + 1
	page.UpdatedAt = &now
	if err := uow.PageRepository().Update(ctx, page); err != nil {
		return nil, err
	}

	if err := s.resequence(ctx, uow, *page.BookId, oldChapterId); err != nil {
		return nil, err
	}
	if err := s.resequence(ctx, uow, *page.BookId, req.ChapterId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, "PAGE_MOVED", &page.Id, &userId, page.Name)
	return pageResponse(page), nil
}

func (s *pageService) Delete(ctx context.Context, userId uuid.UUID, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return err
	}

	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return err
	}
	if page == nil {
		return apperr.NotFound("page not found")
	}

	scope, err := pageScope(ctx, uow, page)
	if err != nil {
		return err
	}
	if !s.resolver.CanManage(ctx, principal, scope) {
		return apperr.AccessDenied("you do not have access to this page")
	}

	if err := uow.PageRepository().Delete(ctx, page.Id); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, "PAGE_DELETED", &page.Id, &userId, page.Name)
	return nil
}

// resequence rewrites sort_order 0..n-1 for one sibling set, keeping the
// current relative order.
func (s *pageService) resequence(ctx context.Context, uow unitofwork.UnitOfWork, bookId uuid.UUID, chapterId *uuid.UUID) error {
	siblings, err := uow.PageRepository().FindAll(ctx,
		specification.ByBookID{BookID: bookId},
		specification.ByChapterID{ChapterID: chapterId},
		specification.OrderBySortOrder{},
	)
	if err != nil {
		return err
	}
	for index, sibling := range siblings {
		if sibling.SortOrder == index {
			continue
		}
		if err := uow.PageRepository().UpdateSortOrder(ctx, sibling.Id, index); err != nil {
			return err
		}
	}
	return nil
}

func pageResponse(page *entity.Page) *dto.ShowPageResponse {
	res := &dto.ShowPageResponse{
		Id:        page.Id,
		Slug:      page.Slug,
		Name:      page.Name,
		Content:   page.Content,
		Html:      page.Html,
		ChapterId: page.ChapterId,
		SortOrder: page.SortOrder,
		CreatedBy: page.CreatedBy,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
	if page.BookId != nil {
		res.BookId = *page.BookId
	}
	return res
}
