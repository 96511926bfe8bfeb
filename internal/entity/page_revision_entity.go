package entity

import (
	"time"

	"github.com/google/uuid"
)

// PageRevision is an immutable snapshot of a page's content. RevisionNumber is
// monotonic per page starting at 1 and is never reused, even after a restore.
// Revisions are only ever inserted; no update or delete path exists.
type PageRevision struct {
	Id             uuid.UUID
	PageId         uuid.UUID
	RevisionNumber int
	Content        string
	Html           string
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
}
