package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/go-movie-gateway/internal/app/handler"
	"github.com/atinyakov/go-movie-gateway/internal/app/service"
	"github.com/atinyakov/go-movie-gateway/internal/middleware"
)

// Init builds the HTTP router of the gateway.
func Init(manager service.MovieManagerIface, logger *zap.Logger) *chi.Mux {
	movies := handler.NewMovies(manager, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithLowerCasePath)
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGZIP)

	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/getallmoviesasync", movies.AllMoviesAsync)
		r.Get("/getallmovies", movies.AllMovies)
		r.Get("/getallmovies2", movies.AllMovies2)
		r.Get("/getallmoviesbygenre", movies.AllMoviesByGenre)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
