package middleware

import (
	"context"
	"net/http"

	"github.com/baharkarakas/bookshelf/internal/auth"
)

type sessionKey struct{}

func WithSession(ctx context.Context, s auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session RequireSession put on the context.
func SessionFrom(ctx context.Context) (auth.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(auth.Session)
	return s, ok && s.Authenticated
}

// RequireSession lets authenticated requests through with their session on
// the context; everything else is redirected to /login.
func RequireSession(sm *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := sm.Load(r)
			if err != nil || !s.Authenticated || s.UserID == "" {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}
