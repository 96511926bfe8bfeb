package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"

	"github.com/redis/go-redis/v9"
)

type IViewService interface {
	ShowBook(ctx context.Context, slug string) (*dto.ShowBookResponse, error)
}

// viewService serves the public reading view. It takes no principal and runs
// no ownership check: anyone holding a book's URL may read it. Responses are
// cached in redis because this is the only endpoint exposed to anonymous
// traffic.
type viewService struct {
	uowFactory  unitofwork.RepositoryFactory
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewViewService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client) IViewService {
	return &viewService{
		uowFactory:  uowFactory,
		redisClient: redisClient,
		cacheTTL:    time.Minute,
	}
}

func viewCacheKey(slug string) string {
	return "view:book:" + slug
}

func (s *viewService) ShowBook(ctx context.Context, slug string) (*dto.ShowBookResponse, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, viewCacheKey(slug)).Result()
		if err == nil {
			var res dto.ShowBookResponse
			if err := json.Unmarshal([]byte(cached), &res); err == nil {
				return &res, nil
			}
		} else if err != redis.Nil {
			log.Printf("[WARN] Redis read failed for %s: %v", slug, err)
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	book, err := uow.BookRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book not found")
	}

	res, err := buildBookResponse(ctx, uow, book)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(res); err == nil {
			if err := s.redisClient.Set(ctx, viewCacheKey(slug), payload, s.cacheTTL).Err(); err != nil {
				log.Printf("[WARN] Redis write failed for %s: %v", slug, err)
			}
		}
	}
	return res, nil
}
