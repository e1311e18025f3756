package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/baharkarakas/bookshelf/internal/repository"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Books: NewBooks(pool),
		Users: NewUsers(pool),
		Close: func(context.Context) error { pool.Close(); return nil },
	}
}
