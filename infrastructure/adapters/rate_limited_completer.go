package adapters

import (
	"context"
	"seo-blog-generator/application/ports/outbound"
	"time"

	"golang.org/x/time/rate"
)

type rateLimitedCompleter struct {
	next    outbound.CompletionPort
	limiter *rate.Limiter
}

// NewRateLimitedCompleter spaces model calls to requestsPerMinute across
// all pipeline runs. A non-positive limit returns next unchanged.
func NewRateLimitedCompleter(next outbound.CompletionPort, requestsPerMinute int) outbound.CompletionPort {
	if requestsPerMinute <= 0 {
		return next
	}
	return &rateLimitedCompleter{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
	}
}

func (r *rateLimitedCompleter) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return r.next.Complete(ctx, req)
}
