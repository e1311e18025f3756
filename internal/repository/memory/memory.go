// Package memory is an in-process store used for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
	"github.com/baharkarakas/bookshelf/internal/repository"
)

func NewRepositories() repository.Repositories {
	return repository.Repositories{
		Books: NewBooks(),
		Users: NewUsers(),
		Close: func(context.Context) error { return nil },
	}
}

type entry struct {
	seq  int64
	book models.Book
}

type booksRepo struct {
	mu   sync.RWMutex
	seq  int64
	rows map[string]entry
	now  func() time.Time
}

func NewBooks() repository.Books {
	return &booksRepo{rows: map[string]entry{}, now: time.Now}
}

func (r *booksRepo) Create(_ context.Context, b models.Book) (models.Book, error) {
	if _, err := uuid.Parse(b.Owner); err != nil {
		return models.Book{}, repository.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = uuid.NewString()
	b.CreatedAt = r.now().UTC()
	b.UpdatedAt = b.CreatedAt
	if b.Tags == nil {
		b.Tags = []string{}
	}
	r.rows[b.ID] = entry{seq: r.seq, book: clone(b)}
	return b, nil
}

func (r *booksRepo) Find(_ context.Context, c criteria.Criteria) ([]models.Book, error) {
	r.mu.RLock()
	matched := make([]entry, 0)
	for _, e := range r.rows {
		if c.Matches(e.book) {
			matched = append(matched, e)
		}
	}
	r.mu.RUnlock()

	if c.Order == criteria.OrderNewestFirst {
		sort.Slice(matched, func(i, j int) bool {
			a, b := matched[i], matched[j]
			if !a.book.CreatedAt.Equal(b.book.CreatedAt) {
				return a.book.CreatedAt.After(b.book.CreatedAt)
			}
			return a.seq > b.seq
		})
	} else {
		sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })
	}
	if c.Limit > 0 && len(matched) > c.Limit {
		matched = matched[:c.Limit]
	}
	out := make([]models.Book, 0, len(matched))
	for _, e := range matched {
		out = append(out, clone(e.book))
	}
	return out, nil
}

func (r *booksRepo) FindOne(_ context.Context, t criteria.Target) (models.Book, error) {
	if err := checkTarget(t); err != nil {
		return models.Book{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.rows[t.ID]
	if !ok || !t.Matches(e.book) {
		return models.Book{}, repository.ErrNotFound
	}
	return clone(e.book), nil
}

func (r *booksRepo) Update(_ context.Context, t criteria.Target, p models.BookPatch) (models.UpdateResult, error) {
	if err := checkTarget(t); err != nil {
		return models.UpdateResult{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[t.ID]
	if !ok || !t.Matches(e.book) {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	if p.Empty() {
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}
	e.book = p.Apply(e.book)
	e.book.UpdatedAt = r.now().UTC()
	r.rows[t.ID] = e
	return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *booksRepo) Delete(_ context.Context, t criteria.Target) (models.DeleteResult, error) {
	if err := checkTarget(t); err != nil {
		return models.DeleteResult{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[t.ID]
	if !ok || !t.Matches(e.book) {
		return models.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.rows, t.ID)
	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// checkTarget applies the id rules of the database backends: a malformed id
// is ErrInvalidID, a malformed owner on a scoped target matches nothing.
func checkTarget(t criteria.Target) error {
	if _, err := uuid.Parse(t.ID); err != nil {
		return repository.ErrInvalidID
	}
	if t.Scoped {
		if _, err := uuid.Parse(t.Owner); err != nil {
			return repository.ErrNotFound
		}
	}
	return nil
}

func clone(b models.Book) models.Book {
	if b.Year != nil {
		y := *b.Year
		b.Year = &y
	}
	b.Tags = append([]string{}, b.Tags...)
	return b
}

type usersRepo struct {
	mu     sync.RWMutex
	byID   map[string]models.User
	byName map[string]string
}

func NewUsers() repository.Users {
	return &usersRepo{byID: map[string]models.User{}, byName: map[string]string{}}
}

func (r *usersRepo) Create(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[u.Username]; ok {
		return models.User{}, repository.ErrDuplicate
	}
	u.ID = uuid.NewString()
	r.byID[u.ID] = u
	r.byName[u.Username] = u.ID
	return u, nil
}

func (r *usersRepo) GetByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[username]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *usersRepo) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}
