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
	"bookhive-be/pkg/importer"
	pktNats "bookhive-be/pkg/nats"
	"bookhive-be/pkg/utils"

	"github.com/google/uuid"
)

type IImportService interface {
	ImportFromURL(ctx context.Context, userId uuid.UUID, req *dto.ImportURLRequest) (*dto.ImportURLResponse, error)
}

// importService turns a URL into a book via the scrape/convert/summarize
// pipeline. Nothing touches the database until the whole pipeline has
// produced a draft; persistence is then ordinary create calls in one
// transaction.
type importService struct {
	uowFactory       unitofwork.RepositoryFactory
	resolver         *access.Resolver
	imp              *importer.Importer
	renderer         *markdown.Renderer
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewImportService(
	uowFactory unitofwork.RepositoryFactory,
	resolver *access.Resolver,
	imp *importer.Importer,
	renderer *markdown.Renderer,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IImportService {
	return &importService{
		uowFactory:       uowFactory,
		resolver:         resolver,
		imp:              imp,
		renderer:         renderer,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *importService) ImportFromURL(ctx context.Context, userId uuid.UUID, req *dto.ImportURLRequest) (*dto.ImportURLResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if req.TeamId != nil && !s.resolver.CanManage(ctx, principal, access.ScopeOf(req.TeamId, userId)) {
		return nil, apperr.AccessDenied("you are not a member of this team")
	}

	draft, err := s.imp.Import(ctx, req.Url)
	if err != nil {
		return nil, err
	}

	bookSlug, err := s.freeSlug(ctx, uow, draft.Name, func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.BookRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	book := &entity.Book{
		Id:          uuid.New(),
		Slug:        bookSlug,
		Name:        draft.Name,
		Description: draft.Description,
		TeamId:      req.TeamId,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.BookRepository().Create(ctx, book); err != nil {
		return nil, err
	}

	pageCount := 0
	for chapterIndex, chapterDraft := range draft.Chapters {
		chapterSlug, err := s.freeSlug(ctx, uow, chapterDraft.Name, func(ctx context.Context, slug string) (bool, error) {
			existing, err := uow.ChapterRepository().FindOne(ctx, specification.BySlug{Slug: slug})
			return existing != nil, err
		})
		if err != nil {
			return nil, err
		}

		chapter := &entity.Chapter{
			Id:        uuid.New(),
			Slug:      chapterSlug,
			Name:      chapterDraft.Name,
			BookId:    book.Id,
			SortOrder: chapterIndex,
			CreatedBy: userId,
			CreatedAt: time.Now(),
		}
		if err := uow.ChapterRepository().Create(ctx, chapter); err != nil {
			return nil, err
		}

		for pageIndex, pageDraft := range chapterDraft.Pages {
			pageSlug, err := s.freeSlug(ctx, uow, pageDraft.Name, func(ctx context.Context, slug string) (bool, error) {
				existing, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: slug})
				return existing != nil, err
			})
			if err != nil {
				return nil, err
			}

			html, err := s.renderer.Render(pageDraft.Content)
			if err != nil {
				return nil, err
			}

			bookId := book.Id
			chapterId := chapter.Id
			page := &entity.Page{
				Id:        uuid.New(),
				Slug:      pageSlug,
				Name:      pageDraft.Name,
				Content:   pageDraft.Content,
				Html:      html,
				BookId:    &bookId,
				ChapterId: &chapterId,
				TeamId:    req.TeamId,
				SortOrder: pageIndex,
				CreatedBy: userId,
				CreatedAt: time.Now(),
			}
			if err := uow.PageRepository().Create(ctx, page); err != nil {
				return nil, err
			}
			pageCount++
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, "BOOK_IMPORTED", nil, &userId, book.Name)
	return &dto.ImportURLResponse{
		BookId:   book.Id,
		BookSlug: book.Slug,
		Chapters: len(draft.Chapters),
		Pages:    pageCount,
	}, nil
}

// freeSlug derives a slug from an imported name and suffixes a short random
// tail on collision. Imports come from arbitrary pages, so rejecting the
// whole pipeline over a taken slug would be hostile.
func (s *importService) freeSlug(ctx context.Context, uow unitofwork.UnitOfWork, name string, taken func(ctx context.Context, slug string) (bool, error)) (string, error) {
	slug := utils.Slugify(name)
	exists, err := taken(ctx, slug)
	if err != nil {
		return "", err
	}
	if exists {
		slug = slug + "-" + uuid.New().String()[:8]
	}
	return slug, nil
}
