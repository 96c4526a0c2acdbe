package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/go-movie-gateway/internal/httpx"
	"github.com/atinyakov/go-movie-gateway/internal/models"
)

// Fetcher downloads a single catalog document.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewFetcher returns a Fetcher using client for every request. A nil client
// falls back to httpx.Shared.
func NewFetcher(client *http.Client, logger *zap.Logger) *Fetcher {
	if client == nil {
		client = httpx.Shared()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		client: client,
		logger: logger,
	}
}

// Fetch GETs url and decodes the body, which must be a JSON array of movies.
func (f *Fetcher) Fetch(ctx context.Context, url string) (models.Catalog, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer func() {
		// drain a bounded tail so the connection can go back to the pool
		_, _ = io.CopyN(io.Discard, resp.Body, maxDrain)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Debug("source returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &RemoteFetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body := &bodyReader{r: resp.Body}
	catalog, err := decodeCatalog(body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &TransportError{URL: url, Err: ctx.Err()}
		}
		if body.err != nil {
			return nil, &TransportError{URL: url, Err: body.err}
		}
		return nil, &DecodeError{URL: url, Err: err}
	}

	f.logger.Debug("catalog fetched",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("movies", len(catalog)),
		zap.Duration("duration", time.Since(start)),
	)

	return catalog, nil
}

// maxDrain bounds how much of an unread body is discarded before closing.
const maxDrain = 64 << 10

// bodyReader remembers the first read error other than io.EOF, so a body cut
// off by the connection is told apart from a complete but malformed one.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && b.err == nil {
		b.err = err
	}
	return n, err
}

// decodeCatalog reads a JSON array element by element so the whole body is
// never held in memory at once. A null document yields an empty catalog; a
// null element is rejected.
func decodeCatalog(r io.Reader) (models.Catalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	catalog := models.Catalog{}

	if tok == nil {
		return catalog, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("expected JSON array, got %v", tok)
	}

	for dec.More() {
		var m *models.Movie
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("movie #%d: %w", len(catalog), err)
		}
		if m == nil {
			return nil, fmt.Errorf("movie #%d: null element", len(catalog))
		}
		catalog = append(catalog, *m)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return catalog, nil
}
