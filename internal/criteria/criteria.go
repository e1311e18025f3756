// Package criteria turns optional, loosely-typed listing inputs into a
// backend-neutral filter over books. Store backends translate a Criteria into
// their own query language; Matches is the reference semantics.
package criteria

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/baharkarakas/bookshelf/internal/models"
)

// PublicLimit caps the unauthenticated listing.
const PublicLimit = 50

type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
)

type Order int

const (
	OrderNatural Order = iota
	OrderNewestFirst
)

// Query holds the raw filter inputs as received.
type Query struct {
	Q       string
	Tag     string
	YearMin string
	YearMax string
}

func FromValues(v url.Values) Query {
	return Query{
		Q:       v.Get("q"),
		Tag:     v.Get("tag"),
		YearMin: v.Get("yearMin"),
		YearMax: v.Get("yearMax"),
	}
}

type Criteria struct {
	// Scoped restricts results to Owner. An empty Owner on a scoped
	// criteria matches nothing.
	Scoped bool
	Owner  string

	// Text is matched as a case-insensitive literal substring of any of
	// TextFields.
	Text       string
	TextFields []Field

	// Tag must be an exact element of the tag list.
	Tag string

	YearMin *int
	YearMax *int

	Order Order
	Limit int
}

// ForOwner builds the criteria for the signed-in owner's listing: text over
// title and author, tag, year range, newest first.
func ForOwner(ownerID string, q Query) Criteria {
	c := Criteria{
		Scoped:  true,
		Owner:   ownerID,
		Tag:     q.Tag,
		YearMin: parseYear(q.YearMin),
		YearMax: parseYear(q.YearMax),
		Order:   OrderNewestFirst,
	}
	if text := strings.TrimSpace(q.Q); text != "" {
		c.Text = text
		c.TextFields = []Field{FieldTitle, FieldAuthor}
	}
	return c
}

// Public builds the criteria for the unauthenticated API: text over title
// only, year range, no tag, at most PublicLimit records.
func Public(q Query) Criteria {
	c := Criteria{
		YearMin: parseYear(q.YearMin),
		YearMax: parseYear(q.YearMax),
		Order:   OrderNatural,
		Limit:   PublicLimit,
	}
	if text := strings.TrimSpace(q.Q); text != "" {
		c.Text = text
		c.TextFields = []Field{FieldTitle}
	}
	return c
}

// parseYear drops anything that is not a non-negative integer.
func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func (c Criteria) HasYearBound() bool { return c.YearMin != nil || c.YearMax != nil }

// Matches reports whether b satisfies every constraint of c.
func (c Criteria) Matches(b models.Book) bool {
	if c.Scoped && (c.Owner == "" || b.Owner != c.Owner) {
		return false
	}
	if c.Text != "" && !c.matchesText(b) {
		return false
	}
	if c.Tag != "" && !b.HasTag(c.Tag) {
		return false
	}
	if c.HasYearBound() {
		if b.Year == nil {
			return false
		}
		if c.YearMin != nil && *b.Year < *c.YearMin {
			return false
		}
		if c.YearMax != nil && *b.Year > *c.YearMax {
			return false
		}
	}
	return true
}

func (c Criteria) matchesText(b models.Book) bool {
	needle := strings.ToLower(c.Text)
	for _, f := range c.TextFields {
		var hay string
		switch f {
		case FieldTitle:
			hay = b.Title
		case FieldAuthor:
			hay = b.Author
		}
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// Target addresses a single book, optionally scoped to an owner.
type Target struct {
	ID     string
	Owner  string
	Scoped bool
}

// Owned addresses id only if it belongs to owner.
func Owned(id, owner string) Target { return Target{ID: id, Owner: owner, Scoped: true} }

// Any addresses id regardless of owner.
func Any(id string) Target { return Target{ID: id} }

func (t Target) Matches(b models.Book) bool {
	if b.ID != t.ID {
		return false
	}
	return !t.Scoped || (t.Owner != "" && b.Owner == t.Owner)
}
