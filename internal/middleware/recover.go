package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/baharkarakas/bookshelf/internal/api/httpx"
)

// Recover turns a handler panic into a 500: JSON under /api, plain text for pages.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic", "err", rec, "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()))
					if strings.HasPrefix(r.URL.Path, "/api/") {
						httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
						return
					}
					http.Error(w, "Something went wrong", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
