package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

// maxInputSize bounds a downloaded input.
const maxInputSize = 1 << 20

// userAgent identifies the tool to the puzzle site's operators.
const userAgent = "advent-cli (+https://github.com/custodia-labs/advent-cli)"

// Fetcher downloads puzzle inputs.
type Fetcher struct {
	client  *http.Client
	limiter *RateLimiter
	baseURL string
	year    int
	session string
}

// NewFetcher creates a fetcher from fetch settings.
// Returns domain.ErrSessionRequired when no session is configured.
func NewFetcher(settings domain.FetchSettings, client *http.Client, limiter *RateLimiter) (*Fetcher, error) {
	if settings.Session == "" {
		return nil, domain.ErrSessionRequired
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if limiter == nil {
		limiter = NewRateLimiter(DefaultInterval)
	}
	return &Fetcher{
		client:  client,
		limiter: limiter,
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		year:    settings.Year,
		session: settings.Session,
	}, nil
}

// URL returns the input URL for day.
func (f *Fetcher) URL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, f.year, day)
}

// Fetch downloads the input for day.
func (f *Fetcher) Fetch(ctx context.Context, day int) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limit: %w", err)
	}

	url := f.URL(day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.session})
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("fetching %s", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", domain.ErrIO, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(firstLine(string(body))),
			URL:        url,
		}
	}
	if len(body) > maxInputSize {
		return nil, fmt.Errorf("%w: input for day %d exceeds %d bytes", domain.ErrInvalidInput, day, maxInputSize)
	}

	return body, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
