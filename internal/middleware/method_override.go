package middleware

import (
	"net/http"
	"strings"
)

const MethodOverrideParam = "_method"

// MethodOverride lets HTML forms reach PUT and DELETE routes by posting to
// an action URL carrying ?_method=PUT or ?_method=DELETE. It must run
// before routing.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch m := strings.ToUpper(r.URL.Query().Get(MethodOverrideParam)); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
