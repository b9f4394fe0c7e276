package adapters

import (
	"context"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
	"strings"
)

type cachedTranscriptFetcher struct {
	logger outbound.LoggerPort
	cache  outbound.TranscriptCachePort
	next   outbound.TranscriptFetcherPort
}

// NewCachedTranscriptFetcher serves transcripts from cache when possible.
// Cache failures are logged and never fail the fetch.
func NewCachedTranscriptFetcher(cache outbound.TranscriptCachePort, next outbound.TranscriptFetcherPort,
	logger outbound.LoggerPort) outbound.TranscriptFetcherPort {
	return &cachedTranscriptFetcher{
		logger: logger,
		cache:  cache,
		next:   next,
	}
}

func (c *cachedTranscriptFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	cached, ok, err := c.cache.Get(ctx, videoID)
	if err != nil {
		c.logger.ErrorWithFields(err, "Transcript cache lookup failed", map[string]interface{}{"video_id": videoID})
	} else if ok {
		c.logger.DebugWithFields("Transcript cache hit", map[string]interface{}{"video_id": videoID})
		return cached, nil
	}

	transcript, err := c.next.Fetch(ctx, videoID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(transcript) == "" || strings.Contains(transcript, domain.TranscriptFailureSentinel) {
		return transcript, nil
	}

	if err := c.cache.Save(ctx, videoID, transcript); err != nil {
		c.logger.ErrorWithFields(err, "Failed to cache transcript", map[string]interface{}{"video_id": videoID})
	}
	return transcript, nil
}
