package wget

import (
	"context"
	"sync"

	"github.com/fwojciec/dashdoc"
	"golang.org/x/time/rate"
)

var _ dashdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces mirror launches per domain using token buckets.
// Roots on different domains start independently while roots on the same
// domain are spaced out.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter allowing rps launches per
// second per domain, with a burst of 1. A non-positive rps disables pacing.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a launch for the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limit := rate.Limit(d.rps)
		if d.rps <= 0 {
			limit = rate.Inf
		}
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
