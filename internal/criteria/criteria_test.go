package criteria

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/bookshelf/internal/models"
)

func year(v int) *int { return &v }

func book(owner, title, author string, y *int, tags ...string) models.Book {
	return models.Book{ID: title, Owner: owner, Title: title, Author: author, Year: y, Tags: tags}
}

func TestForOwner_NoFilters(t *testing.T) {
	c := ForOwner("u1", Query{})

	assert.True(t, c.Scoped)
	assert.Equal(t, "u1", c.Owner)
	assert.Empty(t, c.Text)
	assert.Nil(t, c.YearMin)
	assert.Nil(t, c.YearMax)
	assert.Equal(t, OrderNewestFirst, c.Order)
	assert.Zero(t, c.Limit)

	assert.True(t, c.Matches(book("u1", "Dune", "Herbert", nil)))
	assert.False(t, c.Matches(book("u2", "Dune", "Herbert", nil)))
}

func TestForOwner_EmptyOwnerMatchesNothing(t *testing.T) {
	c := ForOwner("", Query{})
	assert.False(t, c.Matches(book("", "Dune", "Herbert", nil)))
}

func TestForOwner_TextMatchesTitleOrAuthor(t *testing.T) {
	c := ForOwner("u1", Query{Q: "foo"})
	require.Equal(t, []Field{FieldTitle, FieldAuthor}, c.TextFields)

	tests := []struct {
		name string
		b    models.Book
		want bool
	}{
		{"title substring", book("u1", "The FOOl", "X", nil), true},
		{"author substring", book("u1", "Bar", "Mr. Foothill", nil), true},
		{"neither", book("u1", "Bar", "Baz", nil), false},
		{"other owner", book("u2", "foo", "foo", nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Matches(tt.b))
		})
	}
}

func TestForOwner_TextIsLiteral(t *testing.T) {
	c := ForOwner("u1", Query{Q: "c++ (2nd"})
	assert.True(t, c.Matches(book("u1", "C++ (2nd ed.)", "Stroustrup", nil)))
	assert.False(t, c.Matches(book("u1", "cc (2nd", "x", nil)))
}

func TestForOwner_Tag(t *testing.T) {
	c := ForOwner("u1", Query{Tag: "scifi"})

	assert.True(t, c.Matches(book("u1", "Dune", "Herbert", nil, "classic", "scifi")))
	assert.False(t, c.Matches(book("u1", "Dune", "Herbert", nil, "SciFi")))
	assert.False(t, c.Matches(book("u1", "Dune", "Herbert", nil, "scifi-classic")))
	assert.False(t, c.Matches(book("u1", "Dune", "Herbert", nil)))
}

func TestForOwner_YearRange(t *testing.T) {
	c := ForOwner("u1", Query{YearMin: "1990", YearMax: "2000"})
	require.NotNil(t, c.YearMin)
	require.NotNil(t, c.YearMax)

	assert.True(t, c.Matches(book("u1", "a", "a", year(1995))))
	assert.True(t, c.Matches(book("u1", "a", "a", year(1990))))
	assert.True(t, c.Matches(book("u1", "a", "a", year(2000))))
	assert.False(t, c.Matches(book("u1", "a", "a", year(1989))))
	assert.False(t, c.Matches(book("u1", "a", "a", year(2001))))
	assert.False(t, c.Matches(book("u1", "a", "a", nil)))
}

func TestForOwner_SingleBound(t *testing.T) {
	c := ForOwner("u1", Query{YearMin: "2000"})
	assert.Nil(t, c.YearMax)
	assert.True(t, c.Matches(book("u1", "a", "a", year(2020))))
	assert.False(t, c.Matches(book("u1", "a", "a", year(1999))))
	assert.False(t, c.Matches(book("u1", "a", "a", nil)))
}

func TestParseYear_DropsInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"", nil},
		{"abc", nil},
		{"19x5", nil},
		{"-5", nil},
		{"1.5", nil},
		{" 1965 ", year(1965)},
		{"0", year(0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseYear(tt.in))
		})
	}
}

func TestForOwner_InvalidYearTreatedAsAbsent(t *testing.T) {
	c := ForOwner("u1", Query{YearMin: "abc"})
	assert.False(t, c.HasYearBound())
	assert.True(t, c.Matches(book("u1", "a", "a", nil)))
}

func TestPublic(t *testing.T) {
	c := Public(Query{Q: "dune", Tag: "scifi", YearMin: "1960"})

	assert.False(t, c.Scoped)
	assert.Equal(t, []Field{FieldTitle}, c.TextFields)
	assert.Empty(t, c.Tag)
	assert.Equal(t, PublicLimit, c.Limit)
	assert.Equal(t, OrderNatural, c.Order)

	assert.True(t, c.Matches(book("anyone", "Dune Messiah", "Herbert", year(1969))))
	// author is not searched on the public listing
	assert.False(t, c.Matches(book("anyone", "Messiah", "Dune Author", year(1969))))
	assert.False(t, c.Matches(book("anyone", "Dune", "Herbert", nil)))
}

func TestFromValues(t *testing.T) {
	v := url.Values{"q": {"x"}, "tag": {"t"}, "yearMin": {"1"}, "yearMax": {"2"}}
	assert.Equal(t, Query{Q: "x", Tag: "t", YearMin: "1", YearMax: "2"}, FromValues(v))
}

func TestTarget(t *testing.T) {
	b := book("u1", "Dune", "Herbert", nil)

	assert.True(t, Owned("Dune", "u1").Matches(b))
	assert.False(t, Owned("Dune", "u2").Matches(b))
	assert.False(t, Owned("Dune", "").Matches(b))
	assert.False(t, Owned("Other", "u1").Matches(b))
	assert.True(t, Any("Dune").Matches(b))
}
