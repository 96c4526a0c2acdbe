package service

import (
	"context"

	"github.com/atinyakov/go-movie-gateway/internal/models"
	"github.com/atinyakov/go-movie-gateway/internal/worker"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_service.go -package=mocks

// Gateway is the upstream side the manager delegates to.
type Gateway interface {
	GetAllMovies(context.Context) (models.AggregateResult, error)
	GetAllMoviesByGenre(context.Context) (models.AggregateResult, error)
}

// MovieManagerIface is what the HTTP and gRPC layers depend on.
type MovieManagerIface interface {
	GetAllMovies(context.Context) *worker.Task[models.AggregateResult]
	GetAllMoviesAsync(context.Context) (models.AggregateResult, error)
	GetAllMoviesByGenre(context.Context) (models.AggregateResult, error)
}
