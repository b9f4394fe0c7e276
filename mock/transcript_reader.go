package mock_generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
)

type fileTranscriptReader struct {
	logger outbound.LoggerPort
	dir    string
}

// NewFileTranscriptReader serves <dir>/<video_id>.txt, or a built-in
// transcript when dir is empty. A missing file reads as a fetch that ran out
// of retries.
func NewFileTranscriptReader(dir string, logger outbound.LoggerPort) outbound.TranscriptFetcherPort {
	return &fileTranscriptReader{
		logger: logger,
		dir:    dir,
	}
}

func (f *fileTranscriptReader) Fetch(_ context.Context, videoID string) (string, error) {
	if f.dir == "" {
		return defaultTranscript, nil
	}

	content, err := os.ReadFile(filepath.Join(f.dir, filepath.Base(videoID)+".txt"))
	if errors.Is(err, os.ErrNotExist) {
		f.logger.WarnWithFields("No mock transcript for video", map[string]interface{}{"video_id": videoID})
		return fmt.Sprintf("%s: %v", domain.TranscriptFailureSentinel, domain.ErrTranscriptUnavailable), nil
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}
