package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/go-movie-gateway/internal/app/service"
	"github.com/atinyakov/go-movie-gateway/internal/models"
	"github.com/atinyakov/go-movie-gateway/internal/worker"
)

type MoviesHandler struct {
	manager service.MovieManagerIface
	logger  *zap.Logger
}

func NewMovies(m service.MovieManagerIface, l *zap.Logger) *MoviesHandler {
	return &MoviesHandler{
		manager: m,
		logger:  l,
	}
}

// AllMoviesAsync handles GET /api/movies/getallmoviesasync.
func (h *MoviesHandler) AllMoviesAsync(res http.ResponseWriter, req *http.Request) {
	movies, err := h.manager.GetAllMoviesAsync(req.Context())
	h.respond(res, req, movies, err)
}

// AllMovies handles GET /api/movies/getallmovies.
//
// Same result as AllMoviesAsync, reached by chaining a continuation onto the
// manager's task and blocking on it. Kept for comparison with the direct
// form; new handlers should call the manager directly.
func (h *MoviesHandler) AllMovies(res http.ResponseWriter, req *http.Request) {
	task := worker.ContinueWith(h.manager.GetAllMovies(req.Context()),
		func(t *worker.Task[models.AggregateResult]) (models.AggregateResult, error) {
			return t.Wait()
		})

	movies, err := task.Wait()
	h.respond(res, req, movies, err)
}

// AllMovies2 handles GET /api/movies/getallmovies2 by awaiting the manager's
// task.
func (h *MoviesHandler) AllMovies2(res http.ResponseWriter, req *http.Request) {
	movies, err := h.manager.GetAllMovies(req.Context()).Await(req.Context())
	h.respond(res, req, movies, err)
}

// AllMoviesByGenre handles GET /api/movies/getallmoviesbygenre.
func (h *MoviesHandler) AllMoviesByGenre(res http.ResponseWriter, req *http.Request) {
	movies, err := h.manager.GetAllMoviesByGenre(req.Context())
	h.respond(res, req, movies, err)
}

func (h *MoviesHandler) respond(res http.ResponseWriter, req *http.Request, movies models.AggregateResult, err error) {
	if err != nil {
		h.logger.Error("cannot load movies",
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		internalError(res)
		return
	}

	writeJSON(res, http.StatusOK, movies, h.logger)
}
