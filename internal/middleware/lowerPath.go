package middleware

import (
	"net/http"
	"strings"
)

// WithLowerCasePath lower-cases the request path before routing, so
// /api/Movies/GetAllMoviesAsync reaches /api/movies/getallmoviesasync.
// All routes are registered in lower case.
func WithLowerCasePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lower := strings.ToLower(r.URL.Path)
		if lower != r.URL.Path {
			r.URL.Path = lower
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
