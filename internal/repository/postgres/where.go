package postgres

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
	"github.com/baharkarakas/bookshelf/internal/repository"
)

const bookColumns = `id::text, title, author, year, tags, owner::text, created_at, updated_at`

// args collects positional parameters and hands out $n placeholders.
type args []any

func (a *args) add(v any) string {
	*a = append(*a, v)
	return "$" + strconv.Itoa(len(*a))
}

// selectBooks translates c into a SELECT over books.
func selectBooks(c criteria.Criteria) (string, []any, error) {
	var (
		conds []string
		a     args
	)
	if c.Scoped {
		if _, err := uuid.Parse(c.Owner); err != nil {
			return "", nil, repository.ErrInvalidID
		}
		conds = append(conds, "owner = "+a.add(c.Owner))
	}
	if c.Text != "" && len(c.TextFields) > 0 {
		// strpos keeps the input a literal substring
		p := a.add(c.Text)
		var ors []string
		for _, f := range c.TextFields {
			ors = append(ors, "strpos(lower("+string(f)+"), lower("+p+")) > 0")
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	if c.Tag != "" {
		conds = append(conds, a.add(c.Tag)+" = ANY(tags)")
	}
	if c.YearMin != nil {
		conds = append(conds, "year >= "+a.add(*c.YearMin))
	}
	if c.YearMax != nil {
		conds = append(conds, "year <= "+a.add(*c.YearMax))
	}

	var b strings.Builder
	b.WriteString("SELECT " + bookColumns + " FROM books")
	if len(conds) > 0 {
		b.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	if c.Order == criteria.OrderNewestFirst {
		b.WriteString(" ORDER BY created_at DESC")
	}
	if c.Limit > 0 {
		b.WriteString(" LIMIT " + a.add(c.Limit))
	}
	return b.String(), a, nil
}

// targetWhere returns the WHERE clause addressing t, numbering from the
// placeholders already in a.
func targetWhere(t criteria.Target, a *args) (string, error) {
	if _, err := uuid.Parse(t.ID); err != nil {
		return "", repository.ErrInvalidID
	}
	where := "id = " + a.add(t.ID)
	if t.Scoped {
		if _, err := uuid.Parse(t.Owner); err != nil {
			return "", repository.ErrNotFound
		}
		where += " AND owner = " + a.add(t.Owner)
	}
	return where, nil
}

func updateBooks(t criteria.Target, p models.BookPatch) (string, []any, error) {
	var (
		sets []string
		a    args
	)
	if p.Title != nil {
		sets = append(sets, "title = "+a.add(*p.Title))
	}
	if p.Author != nil {
		sets = append(sets, "author = "+a.add(*p.Author))
	}
	if p.Year != nil {
		sets = append(sets, "year = "+a.add(*p.Year))
	}
	if p.Tags != nil {
		sets = append(sets, "tags = "+a.add(*p.Tags))
	}
	sets = append(sets, "updated_at = now()")
	where, err := targetWhere(t, &a)
	if err != nil {
		return "", nil, err
	}
	return "UPDATE books SET " + strings.Join(sets, ", ") + " WHERE " + where, a, nil
}
