package web

import (
	"io/fs"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/bookshelf/internal/models"
)

func TestViews_RenderList(t *testing.T) {
	v, err := NewViews()
	require.NoError(t, err)

	y := 1965
	rec := httptest.NewRecorder()
	err = v.Render(rec, 200, "books/list", map[string]any{
		"Username": "alice",
		"Books":    []models.Book{{ID: "b1", Title: "Dune", Author: "Herbert", Year: &y, Tags: []string{"scifi", "classic"}}},
		"Q":        "<script>",
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "Dune")
	assert.Contains(t, body, "1965")
	assert.Contains(t, body, "scifi, classic")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestViews_RenderFormAndDetail(t *testing.T) {
	v, err := NewViews()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, v.Render(rec, 200, "books/form", map[string]any{"Book": models.Book{}, "Action": "/books"}))
	assert.Contains(t, rec.Body.String(), "New book")

	rec = httptest.NewRecorder()
	b := models.Book{ID: "b1", Title: "Dune", CreatedAt: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)}
	require.NoError(t, v.Render(rec, 200, "books/detail", map[string]any{"Book": b}))
	assert.Contains(t, rec.Body.String(), "/books/b1?_method=DELETE")
	assert.Contains(t, rec.Body.String(), "2024-01-02 03:04")
}

func TestViews_UnknownPage(t *testing.T) {
	v, err := NewViews()
	require.NoError(t, err)
	assert.Error(t, v.Render(httptest.NewRecorder(), 200, "nope", nil))
}

func TestStatic(t *testing.T) {
	b, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
