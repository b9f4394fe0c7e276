package outbound

import "context"

// TranscriptFetcherPort returns the transcript text for a video. After
// exhausting its retries an implementation returns text containing
// domain.TranscriptFailureSentinel instead of an error.
type TranscriptFetcherPort interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}
