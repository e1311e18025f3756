package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
	ErrDuplicate = errors.New("duplicate key")
)

type Books interface {
	Create(ctx context.Context, b models.Book) (models.Book, error)
	Find(ctx context.Context, c criteria.Criteria) ([]models.Book, error)
	FindOne(ctx context.Context, t criteria.Target) (models.Book, error)
	Update(ctx context.Context, t criteria.Target, p models.BookPatch) (models.UpdateResult, error)
	Delete(ctx context.Context, t criteria.Target) (models.DeleteResult, error)
}

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Count(ctx context.Context) (int64, error)
}

type Repositories struct {
	Books Books
	Users Users
	// Close releases the backend's connections.
	Close func(ctx context.Context) error
}
