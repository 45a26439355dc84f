package remote

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum gap between requests to the puzzle site.
const DefaultInterval = 5 * time.Second

// RateLimiter throttles requests with a token bucket of burst 1.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows one request per interval.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
