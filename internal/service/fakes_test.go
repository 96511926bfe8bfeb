package service

import (
	"context"
	"sort"
	"sync"

	"bookhive-be/internal/entity"
	"bookhive-be/internal/repository/contract"
	"bookhive-be/internal/repository/specification"
	"bookhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is the shared in-memory state behind the fake unit of work. The
// mutex stands in for database transactions: Begin takes it, Commit/Rollback
// release it, so two "transactions" never interleave, mirroring the row-lock
// serialization the real implementation relies on.
type fakeStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	teams     map[uuid.UUID]*entity.Team
	members   map[uuid.UUID]*entity.TeamMember
	shelves   map[uuid.UUID]*entity.Shelf
	books     map[uuid.UUID]*entity.Book
	chapters  map[uuid.UUID]*entity.Chapter
	pages     map[uuid.UUID]*entity.Page
	revisions map[uuid.UUID]*entity.PageRevision
	activity  []*entity.ActivityLog

	failRevisionCreate error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[uuid.UUID]*entity.User),
		teams:     make(map[uuid.UUID]*entity.Team),
		members:   make(map[uuid.UUID]*entity.TeamMember),
		shelves:   make(map[uuid.UUID]*entity.Shelf),
		books:     make(map[uuid.UUID]*entity.Book),
		chapters:  make(map[uuid.UUID]*entity.Chapter),
		pages:     make(map[uuid.UUID]*entity.Page),
		revisions: make(map[uuid.UUID]*entity.PageRevision),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
	inTx  bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.store.mu.Lock()
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	if u.inTx {
		u.inTx = false
		u.store.mu.Unlock()
	}
	return nil
}

func (u *fakeUow) Rollback() error {
	if u.inTx {
		u.inTx = false
		u.store.mu.Unlock()
	}
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository { return &fakeUserRepo{u.store} }
func (u *fakeUow) TeamRepository() contract.TeamRepository { return &fakeTeamRepo{u.store} }
func (u *fakeUow) TeamMemberRepository() contract.TeamMemberRepository {
	return &fakeTeamMemberRepo{u.store}
}
func (u *fakeUow) ShelfRepository() contract.ShelfRepository     { return &fakeShelfRepo{u.store} }
func (u *fakeUow) BookRepository() contract.BookRepository       { return &fakeBookRepo{u.store} }
func (u *fakeUow) ChapterRepository() contract.ChapterRepository { return &fakeChapterRepo{u.store} }
func (u *fakeUow) PageRepository() contract.PageRepository       { return &fakePageRepo{u.store} }
func (u *fakeUow) PageRevisionRepository() contract.PageRevisionRepository {
	return &fakeRevisionRepo{u.store}
}
func (u *fakeUow) ActivityLogRepository() contract.ActivityLogRepository {
	return &fakeActivityRepo{u.store}
}

// --- spec matching helpers ---

func matchUser(u *entity.User, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return u.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if u.Id == id {
				return true
			}
		}
		return false
	case specification.ByEmail:
		return u.Email == s.Email
	}
	return true
}

func matchTeam(t *entity.Team, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return t.Id == s.ID
	case specification.BySlug:
		return t.Slug == s.Slug
	}
	return true
}

func matchMember(m *entity.TeamMember, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return m.Id == s.ID
	case specification.ByTeamID:
		return m.TeamId == s.TeamID
	case specification.ByUserID:
		return m.UserId == s.UserID
	case specification.FilterBy:
		if s.Field == "role" {
			return string(m.Role) == s.Value.(string)
		}
	}
	return true
}

func matchShelf(sh *entity.Shelf, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return sh.Id == s.ID
	case specification.BySlug:
		return sh.Slug == s.Slug
	}
	return true
}

func matchBook(b *entity.Book, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return b.Id == s.ID
	case specification.BySlug:
		return b.Slug == s.Slug
	case specification.ByShelfID:
		return b.ShelfId != nil && *b.ShelfId == s.ShelfID
	}
	return true
}

func matchChapter(c *entity.Chapter, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return c.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if c.Id == id {
				return true
			}
		}
		return false
	case specification.BySlug:
		return c.Slug == s.Slug
	case specification.ByBookID:
		return c.BookId == s.BookID
	}
	return true
}

func matchPage(p *entity.Page, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return p.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if p.Id == id {
				return true
			}
		}
		return false
	case specification.BySlug:
		return p.Slug == s.Slug
	case specification.ByBookID:
		return p.BookId != nil && *p.BookId == s.BookID
	case specification.ByChapterID:
		if s.ChapterID == nil {
			return p.ChapterId == nil
		}
		return p.ChapterId != nil && *p.ChapterId == *s.ChapterID
	}
	return true
}

func matchRevision(r *entity.PageRevision, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return r.Id == s.ID
	case specification.ByPageID:
		return r.PageId == s.PageID
	}
	return true
}

// --- repositories ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.store.users[u.Id] = u
	return nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.store.users[u.Id] = u
	return nil
}
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.users, id)
	return nil
}
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		ok := true
		for _, spec := range specs {
			if !matchUser(u, spec) {
				ok = false
				break
			}
		}
		if ok {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		ok := true
		for _, spec := range specs {
			if !matchUser(u, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeTeamRepo struct{ store *fakeStore }

func (r *fakeTeamRepo) Create(ctx context.Context, t *entity.Team) error {
	r.store.teams[t.Id] = t
	return nil
}
func (r *fakeTeamRepo) Update(ctx context.Context, t *entity.Team) error {
	r.store.teams[t.Id] = t
	return nil
}
func (r *fakeTeamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.teams, id)
	return nil
}
func (r *fakeTeamRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error) {
	for _, t := range r.store.teams {
		ok := true
		for _, spec := range specs {
			if !matchTeam(t, spec) {
				ok = false
				break
			}
		}
		if ok {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTeamRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error) {
	var out []*entity.Team
	for _, t := range r.store.teams {
		ok := true
		for _, spec := range specs {
			if !matchTeam(t, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTeamRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeTeamMemberRepo struct{ store *fakeStore }

func (r *fakeTeamMemberRepo) Create(ctx context.Context, m *entity.TeamMember) error {
	r.store.members[m.Id] = m
	return nil
}
func (r *fakeTeamMemberRepo) Update(ctx context.Context, m *entity.TeamMember) error {
	r.store.members[m.Id] = m
	return nil
}
func (r *fakeTeamMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.members, id)
	return nil
}
func (r *fakeTeamMemberRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error) {
	for _, m := range r.store.members {
		ok := true
		for _, spec := range specs {
			if !matchMember(m, spec) {
				ok = false
				break
			}
		}
		if ok {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeTeamMemberRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var out []*entity.TeamMember
	for _, m := range r.store.members {
		ok := true
		for _, spec := range specs {
			if !matchMember(m, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeTeamMemberRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeShelfRepo struct{ store *fakeStore }

func (r *fakeShelfRepo) Create(ctx context.Context, s *entity.Shelf) error {
	r.store.shelves[s.Id] = s
	return nil
}
func (r *fakeShelfRepo) Update(ctx context.Context, s *entity.Shelf) error {
	r.store.shelves[s.Id] = s
	return nil
}
func (r *fakeShelfRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.shelves, id)
	return nil
}
func (r *fakeShelfRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shelf, error) {
	for _, s := range r.store.shelves {
		ok := true
		for _, spec := range specs {
			if !matchShelf(s, spec) {
				ok = false
				break
			}
		}
		if ok {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeShelfRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shelf, error) {
	var out []*entity.Shelf
	for _, s := range r.store.shelves {
		ok := true
		for _, spec := range specs {
			if !matchShelf(s, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeShelfRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeBookRepo struct{ store *fakeStore }

func (r *fakeBookRepo) Create(ctx context.Context, b *entity.Book) error {
	r.store.books[b.Id] = b
	return nil
}
func (r *fakeBookRepo) Update(ctx context.Context, b *entity.Book) error {
	r.store.books[b.Id] = b
	return nil
}
func (r *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.books, id)
	return nil
}
func (r *fakeBookRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error) {
	for _, b := range r.store.books {
		ok := true
		for _, spec := range specs {
			if !matchBook(b, spec) {
				ok = false
				break
			}
		}
		if ok {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBookRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, b := range r.store.books {
		ok := true
		for _, spec := range specs {
			if !matchBook(b, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
func (r *fakeBookRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeChapterRepo struct{ store *fakeStore }

func (r *fakeChapterRepo) Create(ctx context.Context, c *entity.Chapter) error {
	r.store.chapters[c.Id] = c
	return nil
}
func (r *fakeChapterRepo) Update(ctx context.Context, c *entity.Chapter) error {
	r.store.chapters[c.Id] = c
	return nil
}
func (r *fakeChapterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.chapters, id)
	return nil
}
func (r *fakeChapterRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chapter, error) {
	for _, c := range r.store.chapters {
		ok := true
		for _, spec := range specs {
			if !matchChapter(c, spec) {
				ok = false
				break
			}
		}
		if ok {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeChapterRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chapter, error) {
	var out []*entity.Chapter
	for _, c := range r.store.chapters {
		ok := true
		for _, spec := range specs {
			if !matchChapter(c, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}
func (r *fakeChapterRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}
func (r *fakeChapterRepo) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	if c, ok := r.store.chapters[id]; ok {
		c.SortOrder = sortOrder
	}
	return nil
}
func (r *fakeChapterRepo) MaxSortOrder(ctx context.Context, specs ...specification.Specification) (int, error) {
	all, _ := r.FindAll(ctx, specs...)
	max := -1
	for _, c := range all {
		if c.SortOrder > max {
			max = c.SortOrder
		}
	}
	return max, nil
}

type fakePageRepo struct{ store *fakeStore }

func (r *fakePageRepo) Create(ctx context.Context, p *entity.Page) error {
	r.store.pages[p.Id] = p
	return nil
}
func (r *fakePageRepo) Update(ctx context.Context, p *entity.Page) error {
	r.store.pages[p.Id] = p
	return nil
}
func (r *fakePageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.pages, id)
	return nil
}
func (r *fakePageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Page, error) {
	for _, p := range r.store.pages {
		ok := true
		for _, spec := range specs {
			if !matchPage(p, spec) {
				ok = false
				break
			}
		}
		if ok {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePageRepo) FindOneForUpdate(ctx context.Context, specs ...specification.Specification) (*entity.Page, error) {
	// The store mutex held by the surrounding "transaction" stands in for the
	// row lock.
	return r.FindOne(ctx, specs...)
}
func (r *fakePageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Page, error) {
	var out []*entity.Page
	for _, p := range r.store.pages {
		ok := true
		for _, spec := range specs {
			if !matchPage(p, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}
func (r *fakePageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}
func (r *fakePageRepo) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	if p, ok := r.store.pages[id]; ok {
		p.SortOrder = sortOrder
	}
	return nil
}
func (r *fakePageRepo) MaxSortOrder(ctx context.Context, specs ...specification.Specification) (int, error) {
	all, _ := r.FindAll(ctx, specs...)
	max := -1
	for _, p := range all {
		if p.SortOrder > max {
			max = p.SortOrder
		}
	}
	return max, nil
}

type fakeRevisionRepo struct{ store *fakeStore }

func (r *fakeRevisionRepo) Create(ctx context.Context, rev *entity.PageRevision) error {
	if r.store.failRevisionCreate != nil {
		return r.store.failRevisionCreate
	}
	r.store.revisions[rev.Id] = rev
	return nil
}
func (r *fakeRevisionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PageRevision, error) {
	for _, rev := range r.store.revisions {
		ok := true
		for _, spec := range specs {
			if !matchRevision(rev, spec) {
				ok = false
				break
			}
		}
		if ok {
			return rev, nil
		}
	}
	return nil, nil
}
func (r *fakeRevisionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageRevision, error) {
	var out []*entity.PageRevision
	desc := false
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok && o.Field == "revision_number" {
			desc = o.Desc
		}
	}
	for _, rev := range r.store.revisions {
		ok := true
		for _, spec := range specs {
			if !matchRevision(rev, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].RevisionNumber > out[j].RevisionNumber
		}
		return out[i].RevisionNumber < out[j].RevisionNumber
	})
	return out, nil
}
func (r *fakeRevisionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}
func (r *fakeRevisionRepo) MaxRevisionNumber(ctx context.Context, pageId uuid.UUID) (int, error) {
	max := 0
	for _, rev := range r.store.revisions {
		if rev.PageId == pageId && rev.RevisionNumber > max {
			max = rev.RevisionNumber
		}
	}
	return max, nil
}

type fakeActivityRepo struct{ store *fakeStore }

func (r *fakeActivityRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	r.store.activity = append(r.store.activity, log)
	return nil
}
func (r *fakeActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	return r.store.activity, nil
}
func (r *fakeActivityRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.activity)), nil
}
