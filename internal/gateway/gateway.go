// Package gateway fetches movie catalogs from upstream JSON sources and joins
// the results of concurrent fetches.
package gateway

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atinyakov/go-movie-gateway/internal/models"
)

// DefaultBaseURL is where the public catalog documents live.
const DefaultBaseURL = "https://matlusstorage.blob.core.windows.net/membervideos"

// Sources lists the upstream documents the gateway reads.
type Sources struct {
	// Genres holds one URL per genre catalog.
	Genres []string

	// AllMovies is the consolidated catalog.
	AllMovies string
}

// DefaultSources derives the genre and consolidated source URLs from baseURL.
func DefaultSources(baseURL string) Sources {
	base := strings.TrimRight(baseURL, "/")

	return Sources{
		Genres: []string{
			base + "/action.json",
			base + "/drama.json",
			base + "/thriller.json",
			base + "/scifi.json",
		},
		AllMovies: base + "/AllMovies.json",
	}
}

// CatalogFetcher fetches one catalog.
type CatalogFetcher interface {
	Fetch(ctx context.Context, url string) (models.Catalog, error)
}

// MovieGateway aggregates catalogs from its configured sources.
type MovieGateway struct {
	fetcher CatalogFetcher
	sources Sources
	logger  *zap.Logger
}

func New(fetcher CatalogFetcher, sources Sources, logger *zap.Logger) *MovieGateway {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MovieGateway{
		fetcher: fetcher,
		sources: sources,
		logger:  logger,
	}
}

// Sources returns the configured sources.
func (g *MovieGateway) Sources() Sources {
	return g.sources
}

// Aggregate fetches every url concurrently and waits for all of them.
//
// result[i] always holds the catalog of urls[i], whatever order the
// responses arrive in. If any fetch fails, Aggregate returns that error and
// no result; the remaining fetches are cancelled and still joined before
// returning.
func (g *MovieGateway) Aggregate(ctx context.Context, urls []string) (models.AggregateResult, error) {
	start := time.Now()
	result := make(models.AggregateResult, len(urls))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, url := range urls {
		eg.Go(func() error {
			catalog, err := g.fetcher.Fetch(egCtx, url)
			if err != nil {
				return err
			}
			result[i] = catalog
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.logger.Warn("aggregation failed",
			zap.Int("sources", len(urls)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	g.logger.Debug("aggregation done",
		zap.Int("sources", len(urls)),
		zap.Int("movies", result.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// GetAllMoviesByGenre aggregates the genre catalogs.
func (g *MovieGateway) GetAllMoviesByGenre(ctx context.Context) (models.AggregateResult, error) {
	return g.Aggregate(ctx, g.sources.Genres)
}

// GetAllMovies aggregates the consolidated catalog alone, so the result has
// the same shape as GetAllMoviesByGenre with a single element.
func (g *MovieGateway) GetAllMovies(ctx context.Context) (models.AggregateResult, error) {
	return g.Aggregate(ctx, []string{g.sources.AllMovies})
}
