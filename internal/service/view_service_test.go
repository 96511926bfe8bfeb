package service

import (
	"context"
	"testing"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicViewSkipsOwnershipCheck(t *testing.T) {
	store := newFakeStore()
	factory := &fakeFactory{store: store}
	svc := NewViewService(factory, nil)

	// A team-scoped book created by someone else entirely.
	teamId := uuid.New()
	book := &entity.Book{Id: uuid.New(), Slug: "public-handbook", Name: "Handbook", TeamId: &teamId, CreatedBy: uuid.New()}
	store.books[book.Id] = book

	bookId := book.Id
	chapter := &entity.Chapter{Id: uuid.New(), Slug: "ch-1", Name: "Ch 1", BookId: book.Id, SortOrder: 0, CreatedBy: book.CreatedBy}
	store.chapters[chapter.Id] = chapter
	page := &entity.Page{Id: uuid.New(), Slug: "p-1", Name: "P 1", BookId: &bookId, ChapterId: &chapter.Id, SortOrder: 0, CreatedBy: book.CreatedBy}
	store.pages[page.Id] = page

	res, err := svc.ShowBook(context.Background(), "public-handbook")
	require.NoError(t, err)
	assert.Equal(t, "Handbook", res.Name)
	require.Len(t, res.Chapters, 1)
	require.Len(t, res.Chapters[0].Pages, 1)
	assert.Equal(t, "p-1", res.Chapters[0].Pages[0].Slug)
}

func TestPublicViewUnknownBook(t *testing.T) {
	svc := NewViewService(&fakeFactory{store: newFakeStore()}, nil)

	_, err := svc.ShowBook(context.Background(), "missing")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}
