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
	pktNats "bookhive-be/pkg/nats"

	"github.com/google/uuid"
)

type IRevisionService interface {
	// RecordEdit snapshots the page's pre-edit content as a new revision and
	// then applies the new content to the live page, all in one transaction.
	// Callers are responsible for access checks.
	RecordEdit(ctx context.Context, pageId uuid.UUID, newContent, newHtml string, editorId uuid.UUID) (uuid.UUID, error)
	ListRevisions(ctx context.Context, userId uuid.UUID, pageSlug string) ([]*dto.RevisionResponse, error)
	ShowRevision(ctx context.Context, userId uuid.UUID, pageSlug string, revisionId uuid.UUID) (*dto.RevisionDetailResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, pageSlug string, revisionId uuid.UUID) error
}

type revisionService struct {
	uowFactory       unitofwork.RepositoryFactory
	resolver         *access.Resolver
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewRevisionService(
	uowFactory unitofwork.RepositoryFactory,
	resolver *access.Resolver,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IRevisionService {
	return &revisionService{
		uowFactory:       uowFactory,
		resolver:         resolver,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *revisionService) RecordEdit(ctx context.Context, pageId uuid.UUID, newContent, newHtml string, editorId uuid.UUID) (uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return uuid.Nil, err
	}
	defer uow.Rollback()

	// The row lock serializes concurrent edits of the same page, so two
	// editors can never allocate the same revision number.
	page, err := uow.PageRepository().FindOneForUpdate(ctx, specification.ByID{ID: pageId})
	if err != nil {
		return uuid.Nil, err
	}
	if page == nil {
		return uuid.Nil, apperr.NotFound("page not found")
	}

	maxNumber, err := uow.PageRevisionRepository().MaxRevisionNumber(ctx, pageId)
	if err != nil {
		return uuid.Nil, err
	}

	revision := &entity.PageRevision{
		Id:             uuid.New(),
		PageId:         pageId,
		RevisionNumber: maxNumber + 1,
		Content:        page.Content,
		Html:           page.Html,
		CreatedBy:      editorId,
		CreatedAt:      time.Now(),
	}
	if err := uow.PageRevisionRepository().Create(ctx, revision); err != nil {
		return uuid.Nil, err
	}

	now := time.Now()
	page.Content = newContent
	page.Html = newHtml
	page.UpdatedAt = &now
	if err := uow.PageRepository().Update(ctx, page); err != nil {
		return uuid.Nil, err
	}

	if err := uow.Commit(); err != nil {
		return uuid.Nil, err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, "PAGE_EDITED", &pageId, &editorId, page.Name)
	return revision.Id, nil
}

func (s *revisionService) ListRevisions(ctx context.Context, userId uuid.UUID, pageSlug string) ([]*dto.RevisionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: pageSlug})
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

	revisions, err := uow.PageRevisionRepository().FindAll(ctx,
		specification.ByPageID{PageID: page.Id},
		specification.OrderBy{Field: "revision_number", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	authors, err := s.loadAuthors(ctx, uow, revisions)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RevisionResponse, len(revisions))
	for i, rev := range revisions {
		res[i] = &dto.RevisionResponse{
			Id:             rev.Id,
			RevisionNumber: rev.RevisionNumber,
			Name:           page.Name,
			Author:         authors[rev.CreatedBy],
			CreatedAt:      rev.CreatedAt,
		}
	}
	return res, nil
}

func (s *revisionService) ShowRevision(ctx context.Context, userId uuid.UUID, pageSlug string, revisionId uuid.UUID) (*dto.RevisionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	page, err := uow.PageRepository().FindOne(ctx, specification.BySlug{Slug: pageSlug})
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

	revision, err := uow.PageRevisionRepository().FindOne(ctx,
		specification.ByID{ID: revisionId},
		specification.ByPageID{PageID: page.Id},
	)
	if err != nil {
		return nil, err
	}
	if revision == nil {
		return nil, apperr.NotFound("revision not found")
	}

	authors, err := s.loadAuthors(ctx, uow, []*entity.PageRevision{revision})
	if err != nil {
		return nil, err
	}

	return &dto.RevisionDetailResponse{
		Id:             revision.Id,
		RevisionNumber: revision.RevisionNumber,
		Name:           page.Name,
		Content:        revision.Content,
		Html:           revision.Html,
		Author:         authors[revision.CreatedBy],
		CreatedAt:      revision.CreatedAt,
	}, nil
}

func (s *revisionService) Restore(ctx context.Context, userId uuid.UUID, pageSlug string, revisionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	page, err := uow.PageRepository().FindOneForUpdate(ctx, specification.BySlug{Slug: pageSlug})
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

	// A revision id from another page is indistinguishable from a missing one.
	target, err := uow.PageRevisionRepository().FindOne(ctx,
		specification.ByID{ID: revisionId},
		specification.ByPageID{PageID: page.Id},
	)
	if err != nil {
		return err
	}
	if target == nil {
		return apperr.NotFound("revision not found")
	}

	maxNumber, err := uow.PageRevisionRepository().MaxRevisionNumber(ctx, page.Id)
	if err != nil {
		return err
	}

	// Snapshot the current live state first so a restore is always undoable.
	snapshot := &entity.PageRevision{
		Id:             uuid.New(),
		PageId:         page.Id,
		RevisionNumber: maxNumber + 1,
		Content:        page.Content,
		Html:           page.Html,
		CreatedBy:      userId,
		CreatedAt:      time.Now(),
	}
	if err := uow.PageRevisionRepository().Create(ctx, snapshot); err != nil {
		return err
	}

	now := time.Now()
	page.Content = target.Content
	page.Html = target.Html
	page.UpdatedAt = &now
	if err := uow.PageRepository().Update(ctx, page); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, s.eventPublisher, "PAGE_RESTORED", &page.Id, &userId, page.Name)
	return nil
}

func (s *revisionService) loadAuthors(ctx context.Context, uow unitofwork.UnitOfWork, revisions []*entity.PageRevision) (map[uuid.UUID]dto.RevisionAuthor, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, rev := range revisions {
		if !seen[rev.CreatedBy] {
			seen[rev.CreatedBy] = true
			ids = append(ids, rev.CreatedBy)
		}
	}

	authors := make(map[uuid.UUID]dto.RevisionAuthor, len(ids))
	if len(ids) == 0 {
		return authors, nil
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		author := dto.RevisionAuthor{Id: u.Id, FullName: u.FullName}
		if u.AvatarURL != nil {
			author.Image = *u.AvatarURL
		}
		authors[u.Id] = author
	}
	return authors, nil
}
