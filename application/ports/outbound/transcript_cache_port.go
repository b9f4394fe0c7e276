package outbound

import "context"

type TranscriptCachePort interface {
	// Get reports a miss with ok == false and a nil error.
	Get(ctx context.Context, videoID string) (transcript string, ok bool, err error)
	Save(ctx context.Context, videoID string, transcript string) error
}
