package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"timekeeper/pkg/session"
)

var (
	noSessUrls = map[string]string{
		"/api/login":    http.MethodPost,
		"/api/register": http.MethodPost,
	}
)

func CheckSession(sessionStore session.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			template, err := route.GetPathTemplate()

			if err != nil {
				http.Error(w, "Route not found", http.StatusNotFound)
				return
			}

			if method, ok := noSessUrls[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			sess, err := sessionStore.Resolve(cookie.Value)
			if err != nil {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), session.SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
