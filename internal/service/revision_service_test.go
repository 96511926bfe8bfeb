package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bookhive-be/internal/access"
	"bookhive-be/internal/directory"
	"bookhive-be/internal/entity"
	"bookhive-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRevisionFixture() (*fakeStore, IRevisionService, *entity.User, *entity.Page) {
	store := newFakeStore()
	factory := &fakeFactory{store: store}
	resolver := access.NewResolver(directory.NewDirectory(factory))

	user := &entity.User{Id: uuid.New(), Email: "author@example.com", FullName: "Author", Role: entity.UserRoleEditor}
	store.users[user.Id] = user

	page := &entity.Page{
		Id:        uuid.New(),
		Slug:      "getting-started",
		Name:      "Getting Started",
		Content:   "v1",
		Html:      "<p>v1</p>",
		CreatedBy: user.Id,
		CreatedAt: time.Now(),
	}
	store.pages[page.Id] = page

	svc := NewRevisionService(factory, resolver, nil, nil)
	return store, svc, user, page
}

func TestRecordEditSequentialNumbering(t *testing.T) {
	store, svc, user, page := newRevisionFixture()

	for i := 2; i <= 6; i++ {
		_, err := svc.RecordEdit(context.Background(), page.Id, fmt.Sprintf("v%d", i), fmt.Sprintf("<p>v%d</p>", i), user.Id)
		require.NoError(t, err)
	}

	var numbers []int
	for _, rev := range store.revisions {
		numbers = append(numbers, rev.RevisionNumber)
	}
	assert.Len(t, numbers, 5)
	seen := make(map[int]bool)
	for _, n := range numbers {
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 5)
		assert.False(t, seen[n], "revision number %d assigned twice", n)
		seen[n] = true
	}

	// Live page carries the final content; the first revision is the pre-edit
	// snapshot.
	assert.Equal(t, "v6", store.pages[page.Id].Content)
	for _, rev := range store.revisions {
		if rev.RevisionNumber == 1 {
			assert.Equal(t, "v1", rev.Content)
		}
	}
}

func TestRecordEditPageNotFound(t *testing.T) {
	_, svc, user, _ := newRevisionFixture()

	_, err := svc.RecordEdit(context.Background(), uuid.New(), "x", "<p>x</p>", user.Id)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestRecordEditConcurrentNeverDuplicates(t *testing.T) {
	store, svc, user, page := newRevisionFixture()

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.RecordEdit(context.Background(), page.Id, fmt.Sprintf("edit-%d", i), "<p></p>", user.Id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, rev := range store.revisions {
		assert.False(t, seen[rev.RevisionNumber], "revision number %d assigned twice", rev.RevisionNumber)
		seen[rev.RevisionNumber] = true
	}
	assert.Len(t, seen, writers)
	for n := 1; n <= writers; n++ {
		assert.True(t, seen[n], "revision number %d missing", n)
	}
}

func TestRestoreSnapshotsBeforeApplying(t *testing.T) {
	store, svc, user, page := newRevisionFixture()
	ctx := context.Background()

	_, err := svc.RecordEdit(ctx, page.Id, "v2", "<p>v2</p>", user.Id)
	require.NoError(t, err)
	_, err = svc.RecordEdit(ctx, page.Id, "v3", "<p>v3</p>", user.Id)
	require.NoError(t, err)

	var rev1 *entity.PageRevision
	for _, rev := range store.revisions {
		if rev.RevisionNumber == 1 {
			rev1 = rev
		}
	}
	require.NotNil(t, rev1)

	err = svc.Restore(ctx, user.Id, page.Slug, rev1.Id)
	require.NoError(t, err)

	// Live content equals the target; history gained exactly one revision
	// holding the pre-restore live state.
	assert.Equal(t, "v1", store.pages[page.Id].Content)
	assert.Len(t, store.revisions, 3)
	for _, rev := range store.revisions {
		if rev.RevisionNumber == 3 {
			assert.Equal(t, "v3", rev.Content)
		}
	}
}

func TestRestoreRejectsForeignRevision(t *testing.T) {
	store, svc, user, page := newRevisionFixture()
	ctx := context.Background()

	other := &entity.Page{Id: uuid.New(), Slug: "other", Name: "Other", Content: "o1", CreatedBy: user.Id}
	store.pages[other.Id] = other
	_, err := svc.RecordEdit(ctx, other.Id, "o2", "<p>o2</p>", user.Id)
	require.NoError(t, err)

	var foreign *entity.PageRevision
	for _, rev := range store.revisions {
		foreign = rev
	}
	require.NotNil(t, foreign)

	err = svc.Restore(ctx, user.Id, page.Slug, foreign.Id)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestRestoreDeniedForStranger(t *testing.T) {
	store, svc, user, page := newRevisionFixture()
	ctx := context.Background()

	_, err := svc.RecordEdit(ctx, page.Id, "v2", "<p>v2</p>", user.Id)
	require.NoError(t, err)

	stranger := &entity.User{Id: uuid.New(), Email: "s@example.com", Role: entity.UserRoleEditor}
	store.users[stranger.Id] = stranger

	var rev *entity.PageRevision
	for _, r := range store.revisions {
		rev = r
	}

	err = svc.Restore(ctx, stranger.Id, page.Slug, rev.Id)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindAccessDenied, appErr.Kind)
}

func TestListRevisionsNewestFirstWithAuthor(t *testing.T) {
	store, svc, user, page := newRevisionFixture()
	ctx := context.Background()

	avatar := "https://cdn.example.com/a.png"
	user.AvatarURL = &avatar
	store.users[user.Id] = user

	_, err := svc.RecordEdit(ctx, page.Id, "v2", "<p>v2</p>", user.Id)
	require.NoError(t, err)
	_, err = svc.RecordEdit(ctx, page.Id, "v3", "<p>v3</p>", user.Id)
	require.NoError(t, err)

	res, err := svc.ListRevisions(ctx, user.Id, page.Slug)
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, 2, res[0].RevisionNumber)
	assert.Equal(t, 1, res[1].RevisionNumber)
	assert.Equal(t, user.Id, res[0].Author.Id)
	assert.Equal(t, "Author", res[0].Author.FullName)
	assert.Equal(t, avatar, res[0].Author.Image)
}
