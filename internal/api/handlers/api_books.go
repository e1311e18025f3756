package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/bookshelf/internal/api/httpx"
	"github.com/baharkarakas/bookshelf/internal/api/validate"
	"github.com/baharkarakas/bookshelf/internal/criteria"
	"github.com/baharkarakas/bookshelf/internal/models"
	repo "github.com/baharkarakas/bookshelf/internal/repository"
	"github.com/baharkarakas/bookshelf/internal/services"
)

// BookAPI is the unauthenticated JSON surface. Create takes the owner from
// the request body and update/delete address any record by id; there is no
// principal on this path to scope by.
type BookAPI struct {
	Books *services.BookService
	Log   *slog.Logger
}

func NewBookAPI(bs *services.BookService, log *slog.Logger) *BookAPI {
	return &BookAPI{Books: bs, Log: log}
}

func (h *BookAPI) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.Books.Search(r.Context(), criteria.FromValues(r.URL.Query()))
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, books)
}

func (h *BookAPI) Create(w http.ResponseWriter, r *http.Request) {
	var cmd models.CreateBookCommand
	if err := httpx.DecodeJSON(r, &cmd); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	b, err := h.Books.Create(r.Context(), cmd)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, b)
}

func (h *BookAPI) Update(w http.ResponseWriter, r *http.Request) {
	var cmd models.UpdateBookCommand
	if err := httpx.DecodeJSON(r, &cmd); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
		return
	}
	res, err := h.Books.Update(r.Context(), chi.URLParam(r, "id"), cmd)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *BookAPI) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.Books.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

// writeErr maps client mistakes to 400 with their message and anything else
// to an opaque 500.
func (h *BookAPI) writeErr(w http.ResponseWriter, err error) {
	var errs validate.Errs
	switch {
	case errors.As(err, &errs):
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
	case errors.Is(err, repo.ErrInvalidID):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil)
	default:
		h.Log.Error("book api", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
