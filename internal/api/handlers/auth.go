package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/bookshelf/internal/auth"
	"github.com/baharkarakas/bookshelf/internal/services"
	"github.com/baharkarakas/bookshelf/internal/web"
)

type AuthHandler struct {
	Users    *services.UserService
	Sessions *auth.SessionManager
	Views    *web.Views
	Log      *slog.Logger
}

func NewAuthHandler(us *services.UserService, sm *auth.SessionManager, v *web.Views, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Users: us, Sessions: sm, Views: v, Log: log}
}

type loginPage struct {
	Error string
}

// Home sends signed-in users to their books and everyone else to the login form.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	if s, err := h.Sessions.Load(r); err == nil && s.Authenticated {
		http.Redirect(w, r, "/books", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, loginPage{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, loginPage{Error: "Invalid form"})
		return
	}
	u, err := h.Users.Login(r.Context(), r.PostForm.Get("name"), r.PostForm.Get("password"))
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.render(w, http.StatusUnauthorized, loginPage{Error: "Invalid credentials"})
		return
	}
	if err != nil {
		h.Log.Error("login", "err", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	err = h.Sessions.Issue(w, auth.Session{Authenticated: true, UserID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		h.Log.Error("issue session", "err", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	h.Log.Info("login", "user", u.Username)
	http.Redirect(w, r, "/books", http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) render(w http.ResponseWriter, status int, p loginPage) {
	if err := h.Views.Render(w, status, "login", p); err != nil {
		h.Log.Error("render login", "err", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
	}
}
