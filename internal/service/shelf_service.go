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

type IShelfService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateShelfRequest) (*dto.CreateShelfResponse, error)
	Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowShelfResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateShelfRequest) (*dto.ShowShelfResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, slug string) error
}

type shelfService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *access.Resolver
}

func NewShelfService(uowFactory unitofwork.RepositoryFactory, resolver *access.Resolver) IShelfService {
	return &shelfService{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

func (s *shelfService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateShelfRequest) (*dto.CreateShelfResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	// Creating inside a team requires membership of that team.
	if req.TeamId != nil && !s.resolver.CanManage(ctx, principal, access.ScopeOf(req.TeamId, userId)) {
		return nil, apperr.AccessDenied("you are not a member of this team")
	}

	slug, err := resolveSlug(ctx, req.Slug, req.Name, func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.ShelfRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	shelf := &entity.Shelf{
		Id:          uuid.New(),
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
		TeamId:      req.TeamId,
		CreatedBy:   userId,
		CreatedAt:   time.Now(),
	}
	if err := uow.ShelfRepository().Create(ctx, shelf); err != nil {
		return nil, err
	}

	return &dto.CreateShelfResponse{Id: shelf.Id, Slug: shelf.Slug}, nil
}

func (s *shelfService) Show(ctx context.Context, userId uuid.UUID, slug string) (*dto.ShowShelfResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	shelf, err := uow.ShelfRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if shelf == nil {
		return nil, apperr.NotFound("shelf not found")
	}
	if !s.resolver.CanView(ctx, principal, access.ScopeOf(shelf.TeamId, shelf.CreatedBy)) {
		return nil, apperr.AccessDenied("you do not have access to this shelf")
	}

	books, err := uow.BookRepository().FindAll(ctx,
		specification.ByShelfID{ShelfID: shelf.Id},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ShowShelfResponse{
		Id:          shelf.Id,
		Slug:        shelf.Slug,
		Name:        shelf.Name,
		Description: shelf.Description,
		TeamId:      shelf.TeamId,
		CreatedBy:   shelf.CreatedBy,
		Books:       make([]dto.BookSummary, len(books)),
		CreatedAt:   shelf.CreatedAt,
		UpdatedAt:   shelf.UpdatedAt,
	}
	for i, b := range books {
		res.Books[i] = dto.BookSummary{Id: b.Id, Slug: b.Slug, Name: b.Name}
	}
	return res, nil
}

func (s *shelfService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateShelfRequest) (*dto.ShowShelfResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	shelf, err := uow.ShelfRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if shelf == nil {
		return nil, apperr.NotFound("shelf not found")
	}
	if !s.resolver.CanManage(ctx, principal, access.ScopeOf(shelf.TeamId, shelf.CreatedBy)) {
		return nil, apperr.AccessDenied("you do not have access to this shelf")
	}

	now := time.Now()
	shelf.Name = req.Name
	shelf.Description = req.Description
	shelf.UpdatedAt = &now
	if err := uow.ShelfRepository().Update(ctx, shelf); err != nil {
		return nil, err
	}

	return s.Show(ctx, userId, shelf.Slug)
}

// Delete removes the shelf only. Contained books are unshelved, never deleted,
// so no content is lost by reorganizing shelves.
func (s *shelfService) Delete(ctx context.Context, userId uuid.UUID, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	principal, err := loadPrincipal(ctx, uow, userId)
	if err != nil {
		return err
	}

	shelf, err := uow.ShelfRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return err
	}
	if shelf == nil {
		return apperr.NotFound("shelf not found")
	}
	if !s.resolver.CanManage(ctx, principal, access.ScopeOf(shelf.TeamId, shelf.CreatedBy)) {
		return apperr.AccessDenied("you do not have access to this shelf")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	books, err := uow.BookRepository().FindAll(ctx, specification.ByShelfID{ShelfID: shelf.Id})
	if err != nil {
		return err
	}
	for _, b := range books {
		b.ShelfId = nil
		if err := uow.BookRepository().Update(ctx, b); err != nil {
			return err
		}
	}

	if err := uow.ShelfRepository().Delete(ctx, shelf.Id); err != nil {
		return err
	}

	return uow.Commit()
}
