package marklogic

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles outgoing requests across all calls made through a
// Connector. It never retries or delays a failed request.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests per second
// with a burst of one. Returns nil when perSecond is not positive; a nil
// limiter never blocks.
func NewRateLimiter(perSecond float64) *RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	return &RateLimiter{bucket: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Wait blocks until a request may be sent or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.bucket.Wait(ctx)
}
