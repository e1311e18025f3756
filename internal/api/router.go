package api

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/bookshelf/internal/api/handlers"
	"github.com/baharkarakas/bookshelf/internal/auth"
	"github.com/baharkarakas/bookshelf/internal/metrics"
	"github.com/baharkarakas/bookshelf/internal/middleware"
	"github.com/baharkarakas/bookshelf/internal/services"
	"github.com/baharkarakas/bookshelf/internal/web"
)

type RouterDeps struct {
	Log      *slog.Logger
	Sessions *auth.SessionManager
	Views    *web.Views
	Static   fs.FS
	UserSvc  *services.UserService
	BookSvc  *services.BookService
}

func NewRouter(d RouterDeps) http.Handler {
	authH := handlers.NewAuthHandler(d.UserSvc, d.Sessions, d.Views, d.Log)
	pages := handlers.NewBookPages(d.BookSvc, d.Views, d.Log)
	bookAPI := handlers.NewBookAPI(d.BookSvc, d.Log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(d.Log), middleware.MethodOverride, middleware.Observe(d.Log))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())
	if d.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(d.Static))))
	}

	// ---------- web ----------
	r.Get("/", authH.Home)
	r.Get("/login", authH.LoginForm)
	r.Post("/login", authH.Login)
	r.Get("/logout", authH.Logout)

	r.Route("/books", func(r chi.Router) {
		r.Use(middleware.RequireSession(d.Sessions))
		r.Get("/", pages.List)
		r.Post("/", pages.Create)
		r.Get("/new", pages.New)
		r.Get("/{id}", pages.Show)
		r.Get("/{id}/edit", pages.Edit)
		r.Put("/{id}", pages.Update)
		r.Delete("/{id}", pages.Delete)
	})

	// ---------- public API (no session) ----------
	r.Route("/api/books", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
		r.Get("/", bookAPI.List)
		r.Post("/", bookAPI.Create)
		r.Put("/{id}", bookAPI.Update)
		r.Delete("/{id}", bookAPI.Delete)
	})

	return r
}
