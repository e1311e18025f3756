package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/bookshelf/internal/api/validate"
	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/middleware"
	"github.com/baharkarakas/bookshelf/internal/models"
	repo "github.com/baharkarakas/bookshelf/internal/repository"
	"github.com/baharkarakas/bookshelf/internal/services"
	"github.com/baharkarakas/bookshelf/internal/web"
)

// BookPages serves the signed-in owner's book pages. Every route sits behind
// middleware.RequireSession.
type BookPages struct {
	Books *services.BookService
	Views *web.Views
	Log   *slog.Logger
}

func NewBookPages(bs *services.BookService, v *web.Views, log *slog.Logger) *BookPages {
	return &BookPages{Books: bs, Views: v, Log: log}
}

type listPage struct {
	Username string
	Books    []models.Book
	criteria.Query
}

type formPage struct {
	Book   models.Book
	Action string
	Error  string
}

type detailPage struct {
	Book models.Book
}

func (h *BookPages) List(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())
	q := criteria.FromValues(r.URL.Query())
	books, err := h.Books.ListOwned(r.Context(), s.UserID, q)
	if err != nil {
		h.fail(w, "list books", err)
		return
	}
	h.render(w, http.StatusOK, "books/list", listPage{Username: s.Username, Books: books, Query: q})
}

func (h *BookPages) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "books/form", formPage{Action: "/books"})
}

func (h *BookPages) Create(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())
	f, err := parseBookForm(r)
	if err == nil {
		_, err = h.Books.Create(r.Context(), models.CreateBookCommand{
			Title:  f.Get("title"),
			Author: f.Get("author"),
			Year:   f.year,
			Tags:   models.TagList(models.SplitTags(f.Get("tags"))),
			Owner:  s.UserID,
		})
	}
	if err != nil {
		h.formError(w, err, "/books", f.book())
		return
	}
	http.Redirect(w, r, "/books", http.StatusFound)
}

func (h *BookPages) Show(w http.ResponseWriter, r *http.Request) {
	b, ok := h.owned(w, r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, "books/detail", detailPage{Book: b})
}

func (h *BookPages) Edit(w http.ResponseWriter, r *http.Request) {
	b, ok := h.owned(w, r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, "books/form", formPage{Book: b, Action: editAction(b.ID)})
}

func (h *BookPages) Update(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")
	f, err := parseBookForm(r)
	if err == nil {
		title, author := f.Get("title"), f.Get("author")
		tags := models.TagList(models.SplitTags(f.Get("tags")))
		err = h.Books.UpdateOwned(r.Context(), id, s.UserID, models.UpdateBookCommand{
			Title:  &title,
			Author: &author,
			Year:   f.year,
			Tags:   &tags,
		})
	}
	if errors.Is(err, repo.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		b := f.book()
		b.ID = id
		h.formError(w, err, editAction(id), b)
		return
	}
	http.Redirect(w, r, "/books", http.StatusFound)
}

func (h *BookPages) Delete(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())
	err := h.Books.DeleteOwned(r.Context(), chi.URLParam(r, "id"), s.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		h.fail(w, "delete book", err)
		return
	}
	http.Redirect(w, r, "/books", http.StatusFound)
}

// owned loads the {id} book for the session's owner, writing 404 or 500
// itself when it cannot.
func (h *BookPages) owned(w http.ResponseWriter, r *http.Request) (models.Book, bool) {
	s, _ := middleware.SessionFrom(r.Context())
	b, err := h.Books.GetOwned(r.Context(), chi.URLParam(r, "id"), s.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		notFound(w)
		return models.Book{}, false
	}
	if err != nil {
		h.fail(w, "get book", err)
		return models.Book{}, false
	}
	return b, true
}

func (h *BookPages) formError(w http.ResponseWriter, err error, action string, b models.Book) {
	var errs validate.Errs
	if !errors.As(err, &errs) {
		h.fail(w, "save book", err)
		return
	}
	h.render(w, http.StatusBadRequest, "books/form", formPage{Book: b, Action: action, Error: errs.Error()})
}

func (h *BookPages) render(w http.ResponseWriter, status int, name string, data any) {
	if err := h.Views.Render(w, status, name, data); err != nil {
		h.fail(w, "render "+name, err)
	}
}

func (h *BookPages) fail(w http.ResponseWriter, what string, err error) {
	h.Log.Error(what, "err", err)
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}

func notFound(w http.ResponseWriter) { http.Error(w, "Not found", http.StatusNotFound) }

func editAction(id string) string {
	return "/books/" + url.PathEscape(id) + "?" + middleware.MethodOverrideParam + "=PUT"
}

type bookForm struct {
	url.Values
	year *int
}

// parseBookForm reads the form and converts year; a blank year is absent.
func parseBookForm(r *http.Request) (bookForm, error) {
	if err := r.ParseForm(); err != nil {
		return bookForm{Values: url.Values{}}, validate.Field("form", "could not be parsed")
	}
	f := bookForm{Values: r.PostForm}
	if y := strings.TrimSpace(f.Get("year")); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return f, validate.Field("year", "must be a number")
		}
		f.year = &n
	}
	return f, nil
}

// book echoes the submitted values back into the form.
func (f bookForm) book() models.Book {
	return models.Book{
		Title:  f.Get("title"),
		Author: f.Get("author"),
		Year:   f.year,
		Tags:   models.SplitTags(f.Get("tags")),
	}
}
