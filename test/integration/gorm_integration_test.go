package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/unitofwork"
	"bookhive-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.PageRevisionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Activity Log Repository", func(t *testing.T) {
		count, err := uow.ActivityLogRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ActivityLog count: %d", count)
	})

	t.Run("Check Transactional Book Creation", func(t *testing.T) {
		ctx := context.Background()

		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     entity.UserRoleEditor,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		bookId := uuid.New()
		book := &entity.Book{
			Id:        bookId,
			Slug:      "integration-book-" + uuid.New().String(),
			Name:      "Integration Book",
			CreatedBy: userId,
		}
		err = uow.BookRepository().Create(ctx, book)
		assert.NoError(t, err)

		chapter := &entity.Chapter{
			Id:        uuid.New(),
			Slug:      "integration-chapter-" + uuid.New().String(),
			Name:      "Integration Chapter",
			BookId:    bookId,
			SortOrder: 0,
			CreatedBy: userId,
		}
		err = uow.ChapterRepository().Create(ctx, chapter)
		assert.NoError(t, err)

		page := &entity.Page{
			Id:        uuid.New(),
			Slug:      "integration-page-" + uuid.New().String(),
			Name:      "Integration Page",
			Content:   "# Integration",
			BookId:    &bookId,
			ChapterId: &chapter.Id,
			SortOrder: 0,
			CreatedBy: userId,
		}
		err = uow.PageRepository().Create(ctx, page)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Book with Chapter and Page in Transaction")
	})
}
