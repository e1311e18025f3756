package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
	"github.com/baharkarakas/bookshelf/internal/repository"
)

type booksRepo struct{ pool *pgxpool.Pool }

func NewBooks(pool *pgxpool.Pool) repository.Books {
	return &booksRepo{pool: pool}
}

func scanBook(row pgx.Row) (models.Book, error) {
	var b models.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Tags, &b.Owner, &b.CreatedAt, &b.UpdatedAt)
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return b, err
}

func (r *booksRepo) Create(ctx context.Context, b models.Book) (models.Book, error) {
	if _, err := uuid.Parse(b.Owner); err != nil {
		return models.Book{}, repository.ErrInvalidID
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return scanBook(r.pool.QueryRow(ctx,
		`INSERT INTO books(id, title, author, year, tags, owner)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+bookColumns,
		uuid.NewString(), b.Title, b.Author, b.Year, b.Tags, b.Owner,
	))
}

func (r *booksRepo) Find(ctx context.Context, c criteria.Criteria) ([]models.Book, error) {
	q, args, err := selectBooks(c)
	if errors.Is(err, repository.ErrInvalidID) {
		return []models.Book{}, nil
	}
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *booksRepo) FindOne(ctx context.Context, t criteria.Target) (models.Book, error) {
	var a args
	where, err := targetWhere(t, &a)
	if err != nil {
		return models.Book{}, err
	}
	b, err := scanBook(r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE `+where, a...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Book{}, repository.ErrNotFound
	}
	return b, err
}

func (r *booksRepo) Update(ctx context.Context, t criteria.Target, p models.BookPatch) (models.UpdateResult, error) {
	if p.Empty() {
		var a args
		where, err := targetWhere(t, &a)
		if err != nil {
			return models.UpdateResult{}, err
		}
		var n int64
		err = r.pool.QueryRow(ctx, `SELECT count(*) FROM books WHERE `+where, a...).Scan(&n)
		return models.UpdateResult{Acknowledged: err == nil, MatchedCount: n}, err
	}
	q, a, err := updateBooks(t, p)
	if err != nil {
		return models.UpdateResult{}, err
	}
	tag, err := r.pool.Exec(ctx, q, a...)
	if err != nil {
		return models.UpdateResult{}, err
	}
	n := tag.RowsAffected()
	return models.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (r *booksRepo) Delete(ctx context.Context, t criteria.Target) (models.DeleteResult, error) {
	var a args
	where, err := targetWhere(t, &a)
	if err != nil {
		return models.DeleteResult{}, err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE `+where, a...)
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}
