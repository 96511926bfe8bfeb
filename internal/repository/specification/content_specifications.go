package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByBookID struct {
	BookID uuid.UUID
}

func (s ByBookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("book_id = ?", s.BookID)
}

type ByShelfID struct {
	ShelfID uuid.UUID
}

func (s ByShelfID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("shelf_id = ?", s.ShelfID)
}

// ByChapterID matches pages inside a chapter. A nil ChapterID selects pages
// that are direct children of a book, bypassing chapters.
type ByChapterID struct {
	ChapterID *uuid.UUID
}

func (s ByChapterID) Apply(db *gorm.DB) *gorm.DB {
	if s.ChapterID == nil {
		return db.Where("chapter_id IS NULL")
	}
	return db.Where("chapter_id = ?", s.ChapterID)
}

type ByPageID struct {
	PageID uuid.UUID
}

func (s ByPageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_id = ?", s.PageID)
}

type CreatedBy struct {
	UserID uuid.UUID
}

func (s CreatedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_by = ?", s.UserID)
}

// OrderBySortOrder returns siblings in display order.
type OrderBySortOrder struct{}

func (s OrderBySortOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}
