package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
	"github.com/baharkarakas/bookshelf/internal/repository"
)

func TestSelectBooks_OwnerOnly(t *testing.T) {
	owner := uuid.NewString()

	q, a, err := selectBooks(criteria.ForOwner(owner, criteria.Query{}))
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+bookColumns+" FROM books WHERE owner = $1 ORDER BY created_at DESC", q)
	assert.Equal(t, []any{owner}, a)
}

func TestSelectBooks_AllOwnerFilters(t *testing.T) {
	owner := uuid.NewString()
	c := criteria.ForOwner(owner, criteria.Query{Q: "50%", Tag: "scifi", YearMin: "1990", YearMax: "2000"})

	q, a, err := selectBooks(c)
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+bookColumns+" FROM books WHERE owner = $1"+
		" AND (strpos(lower(title), lower($2)) > 0 OR strpos(lower(author), lower($2)) > 0)"+
		" AND $3 = ANY(tags) AND year >= $4 AND year <= $5 ORDER BY created_at DESC", q)
	assert.Equal(t, []any{owner, "50%", "scifi", 1990, 2000}, a)
}

func TestSelectBooks_Public(t *testing.T) {
	q, a, err := selectBooks(criteria.Public(criteria.Query{Q: "dune", YearMin: "x"}))
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+bookColumns+" FROM books WHERE (strpos(lower(title), lower($1)) > 0) LIMIT $2", q)
	assert.Equal(t, []any{"dune", criteria.PublicLimit}, a)
}

func TestSelectBooks_MalformedOwner(t *testing.T) {
	_, _, err := selectBooks(criteria.ForOwner("abc", criteria.Query{}))
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestUpdateBooks(t *testing.T) {
	id, owner := uuid.NewString(), uuid.NewString()
	title := "Dune"
	tags := []string{"scifi"}

	q, a, err := updateBooks(criteria.Owned(id, owner), models.BookPatch{Title: &title, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE books SET title = $1, tags = $2, updated_at = now() WHERE id = $3 AND owner = $4", q)
	assert.Equal(t, []any{"Dune", []string{"scifi"}, id, owner}, a)

	_, _, err = updateBooks(criteria.Any("nope"), models.BookPatch{Title: &title})
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestTargetWhere(t *testing.T) {
	id := uuid.NewString()
	var a args

	where, err := targetWhere(criteria.Any(id), &a)
	require.NoError(t, err)
	assert.Equal(t, "id = $1", where)

	_, err = targetWhere(criteria.Owned(id, "not-a-uuid"), &a)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
