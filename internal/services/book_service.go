package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/baharkarakas/bookshelf/internal/api/validate"
	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/metrics"
	"github.com/baharkarakas/bookshelf/internal/models"
	repo "github.com/baharkarakas/bookshelf/internal/repository"
)

type BookService struct {
	r   repo.Books
	log *slog.Logger
}

func NewBookService(r repo.Books, log *slog.Logger) *BookService {
	return &BookService{r: r, log: log}
}

// ----------------- owner-scoped (web) -----------------

func (s *BookService) ListOwned(ctx context.Context, ownerID string, q criteria.Query) ([]models.Book, error) {
	c := criteria.ForOwner(ownerID, q)
	s.log.Debug("list owned books", "owner", ownerID, "q", q.Q, "tag", q.Tag, "yearMin", q.YearMin, "yearMax", q.YearMax)
	return s.r.Find(ctx, c)
}

// GetOwned hides foreign, unknown and malformed ids behind ErrNotFound.
func (s *BookService) GetOwned(ctx context.Context, id, ownerID string) (models.Book, error) {
	b, err := s.r.FindOne(ctx, criteria.Owned(id, ownerID))
	if errors.Is(err, repo.ErrInvalidID) {
		return models.Book{}, repo.ErrNotFound
	}
	return b, err
}

func (s *BookService) UpdateOwned(ctx context.Context, id, ownerID string, cmd models.UpdateBookCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return err
	}
	res, err := s.r.Update(ctx, criteria.Owned(id, ownerID), cmd.Patch())
	if errors.Is(err, repo.ErrInvalidID) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	metrics.BookMutations.WithLabelValues("update").Inc()
	return nil
}

func (s *BookService) DeleteOwned(ctx context.Context, id, ownerID string) error {
	res, err := s.r.Delete(ctx, criteria.Owned(id, ownerID))
	if errors.Is(err, repo.ErrInvalidID) {
		return repo.ErrNotFound
	}
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	metrics.BookMutations.WithLabelValues("delete").Inc()
	return nil
}

// ----------------- shared -----------------

// Create validates cmd and persists it. The owner is whatever cmd says: the
// web layer sets it from the session, the public API takes it from the body.
func (s *BookService) Create(ctx context.Context, cmd models.CreateBookCommand) (models.Book, error) {
	if err := validate.Struct(cmd); err != nil {
		return models.Book{}, err
	}
	b, err := s.r.Create(ctx, cmd.Book())
	if errors.Is(err, repo.ErrInvalidID) {
		return models.Book{}, validate.Field("owner", "invalid id")
	}
	if err != nil {
		return models.Book{}, err
	}
	metrics.BookMutations.WithLabelValues("create").Inc()
	s.log.Info("book created", "id", b.ID, "owner", b.Owner)
	return b, nil
}

// ----------------- unscoped (public API) -----------------

func (s *BookService) Search(ctx context.Context, q criteria.Query) ([]models.Book, error) {
	return s.r.Find(ctx, criteria.Public(q))
}

// Update applies cmd to any book by id. An unknown id is not an error; the
// result reports zero matches.
func (s *BookService) Update(ctx context.Context, id string, cmd models.UpdateBookCommand) (models.UpdateResult, error) {
	if err := validate.Struct(cmd); err != nil {
		return models.UpdateResult{}, err
	}
	res, err := s.r.Update(ctx, criteria.Any(id), cmd.Patch())
	if err != nil {
		return models.UpdateResult{}, err
	}
	if res.ModifiedCount > 0 {
		metrics.BookMutations.WithLabelValues("update").Inc()
	}
	return res, nil
}

func (s *BookService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	res, err := s.r.Delete(ctx, criteria.Any(id))
	if err != nil {
		return models.DeleteResult{}, err
	}
	if res.DeletedCount > 0 {
		metrics.BookMutations.WithLabelValues("delete").Inc()
	}
	return res, nil
}
