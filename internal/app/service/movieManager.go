// Package service sits between the transport handlers and the catalog
// gateway.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/atinyakov/go-movie-gateway/internal/models"
	"github.com/atinyakov/go-movie-gateway/internal/worker"
)

// MovieManager exposes the gateway operations to handlers.
type MovieManager struct {
	gateway Gateway
	logger  *zap.Logger
}

func NewMovieManager(g Gateway, logger *zap.Logger) *MovieManager {
	return &MovieManager{
		gateway: g,
		logger:  logger,
	}
}

// GetAllMovies starts fetching the consolidated catalog and returns without
// waiting. The caller decides whether to await the task or continue from it.
func (m *MovieManager) GetAllMovies(ctx context.Context) *worker.Task[models.AggregateResult] {
	return worker.Run(func() (models.AggregateResult, error) {
		return m.allMovies(ctx)
	})
}

// GetAllMoviesAsync fetches the consolidated catalog and returns its result.
func (m *MovieManager) GetAllMoviesAsync(ctx context.Context) (models.AggregateResult, error) {
	return m.allMovies(ctx)
}

func (m *MovieManager) allMovies(ctx context.Context) (models.AggregateResult, error) {
	result, err := m.gateway.GetAllMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all movies: %w", err)
	}

	m.logger.Info("all movies fetched", zap.Int("movies", result.Len()))
	return result, nil
}

// GetAllMoviesByGenre fetches every genre catalog concurrently.
func (m *MovieManager) GetAllMoviesByGenre(ctx context.Context) (models.AggregateResult, error) {
	result, err := m.gateway.GetAllMoviesByGenre(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies by genre: %w", err)
	}

	m.logger.Info("genre catalogs fetched",
		zap.Int("catalogs", len(result)),
		zap.Int("movies", result.Len()),
	)
	return result, nil
}
