package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bookhive-be/internal/access"
	"bookhive-be/internal/dto"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"
	"bookhive-be/pkg/events"
	pktNats "bookhive-be/pkg/nats"
	"bookhive-be/pkg/utils"

	"github.com/google/uuid"
)

// loadPrincipal resolves the authenticated user id to a full user record. A
// valid token whose account has since been removed is treated as
// unauthenticated, not as a missing resource.
func loadPrincipal(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthenticated("account no longer exists")
	}
	return user, nil
}

// pageScope loads the owning book (when set) so the resolver can walk the
// page→book fallback.
func pageScope(ctx context.Context, uow unitofwork.UnitOfWork, page *entity.Page) (access.Scope, error) {
	var book *entity.Book
	if page.BookId != nil {
		var err error
		book, err = uow.BookRepository().FindOne(ctx, specification.ByID{ID: *page.BookId})
		if err != nil {
			return access.Scope{}, err
		}
	}
	return access.PageScope(page, book), nil
}

// resolveSlug derives a slug from the request (explicit slug wins, else the
// name) and rejects collisions. Slugs are unique per table across all parents,
// so a duplicate anywhere is a client error, backed by the DB unique index.
func resolveSlug(ctx context.Context, requested, name string, taken func(ctx context.Context, slug string) (bool, error)) (string, error) {
	source := requested
	if source == "" {
		source = name
	}
	slug := utils.Slugify(source)

	exists, err := taken(ctx, slug)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperr.InvalidRequest("slug already in use: " + slug)
	}
	return slug, nil
}

// buildBookResponse assembles the full book tree: chapters in sort order, each
// with its pages, plus pages sitting directly under the book. Shared by the
// authenticated book endpoint and the public reading view.
func buildBookResponse(ctx context.Context, uow unitofwork.UnitOfWork, book *entity.Book) (*dto.ShowBookResponse, error) {
	chapters, err := uow.ChapterRepository().FindAll(ctx,
		specification.ByBookID{BookID: book.Id},
		specification.OrderBySortOrder{},
	)
	if err != nil {
		return nil, err
	}

	pages, err := uow.PageRepository().FindAll(ctx,
		specification.ByBookID{BookID: book.Id},
		specification.OrderBySortOrder{},
	)
	if err != nil {
		return nil, err
	}

	pagesByChapter := make(map[uuid.UUID][]dto.PageSummary)
	var directPages []dto.PageSummary
	for _, p := range pages {
		summary := dto.PageSummary{Id: p.Id, Slug: p.Slug, Name: p.Name, SortOrder: p.SortOrder}
		if p.ChapterId == nil {
			directPages = append(directPages, summary)
			continue
		}
		pagesByChapter[*p.ChapterId] = append(pagesByChapter[*p.ChapterId], summary)
	}

	res := &dto.ShowBookResponse{
		Id:          book.Id,
		Slug:        book.Slug,
		Name:        book.Name,
		Description: book.Description,
		ShelfId:     book.ShelfId,
		TeamId:      book.TeamId,
		CreatedBy:   book.CreatedBy,
		Chapters:    make([]dto.ChapterSummary, len(chapters)),
		Pages:       directPages,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
	for i, c := range chapters {
		res.Chapters[i] = dto.ChapterSummary{
			Id:        c.Id,
			Slug:      c.Slug,
			Name:      c.Name,
			SortOrder: c.SortOrder,
			Pages:     pagesByChapter[c.Id],
		}
	}
	return res, nil
}

// publishActivity fans a content mutation out to the in-process activity topic
// and, best effort, to NATS. Neither failure mode fails the originating
// request.
func publishActivity(ctx context.Context, pub IPublisherService, eventPublisher *pktNats.Publisher, eventType string, pageId, userId *uuid.UUID, detail string) {
	if pub != nil {
		payload, err := json.Marshal(dto.PublishActivityMessage{
			EventType: eventType,
			PageId:    pageId,
			UserId:    userId,
			Detail:    detail,
		})
		if err == nil {
			if err := pub.Publish(ctx, payload); err != nil {
				log.Printf("[WARN] Failed to publish %s activity: %v", eventType, err)
			}
		}
	}

	if eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"page_id": pageId,
				"user_id": userId,
				"detail":  detail,
			},
			OccurredAt: time.Now(),
		}
		if err := eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
		}
	}
}
