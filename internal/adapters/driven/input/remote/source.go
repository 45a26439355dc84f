package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driven"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

// Ensure CachingSource implements the interface.
var _ driven.InputSource = (*CachingSource)(nil)

// Cache is local input storage that downloads are written to.
type Cache interface {
	driven.InputSource

	// Write stores content as the input for day.
	Write(day int, content []byte) error
}

// CachingSource reads from a local cache and downloads missing inputs.
type CachingSource struct {
	cache   Cache
	fetcher *Fetcher
}

// NewCachingSource wraps cache with fetcher.
func NewCachingSource(cache Cache, fetcher *Fetcher) *CachingSource {
	return &CachingSource{cache: cache, fetcher: fetcher}
}

// Path returns the local cache path for day.
func (s *CachingSource) Path(day int) string {
	return s.cache.Path(day)
}

// Open returns the cached input, downloading and caching it first if missing.
// A failed cache write is logged; the downloaded input is still returned.
func (s *CachingSource) Open(ctx context.Context, day int) (io.ReadCloser, error) {
	rc, err := s.cache.Open(ctx, day)
	if err == nil {
		return rc, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	logger.Info("day %d: %s missing, downloading", day, s.cache.Path(day))
	content, err := s.fetcher.Fetch(ctx, day)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w: day %d is not published", domain.ErrIO, domain.ErrNotFound, day)
		}
		return nil, fmt.Errorf("%w: fetch day %d: %w", domain.ErrIO, day, err)
	}

	if err := s.cache.Write(day, content); err != nil {
		logger.Warn("day %d: caching input: %v", day, err)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}
