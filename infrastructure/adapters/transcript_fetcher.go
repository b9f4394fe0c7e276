package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/config"
	"seo-blog-generator/domain"
	"strings"

	"github.com/cenkalti/backoff/v5"
)

var errEmptyTranscript = errors.New("transcript service returned no text")

type transcriptResponse struct {
	Transcript string              `json:"transcript"`
	Segments   []transcriptSegment `json:"segments"`
}

type transcriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

func (r transcriptResponse) text() string {
	if strings.TrimSpace(r.Transcript) != "" {
		return strings.TrimSpace(r.Transcript)
	}
	parts := make([]string, 0, len(r.Segments))
	for _, segment := range r.Segments {
		if t := strings.TrimSpace(segment.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

type transcriptFetcher struct {
	logger     outbound.LoggerPort
	conf       *config.TranscriptConfig
	fetcher    ContentFetcher
	authorizer Authorizer
}

// NewTranscriptFetcher calls the transcript service with exponential
// backoff. authorizer may be nil for unauthenticated services.
func NewTranscriptFetcher(conf *config.TranscriptConfig, fetcher ContentFetcher, authorizer Authorizer,
	logger outbound.LoggerPort) outbound.TranscriptFetcherPort {
	return &transcriptFetcher{
		logger:     logger,
		conf:       conf,
		fetcher:    fetcher,
		authorizer: authorizer,
	}
}

func (t *transcriptFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	attempt := 0
	operation := func() (string, error) {
		attempt++
		text, err := t.fetchOnce(ctx, videoID)
		if err != nil {
			t.logger.WarnWithFields("Transcript attempt failed", map[string]interface{}{
				"video_id": videoID,
				"attempt":  attempt,
				"error":    err.Error(),
			})
		}
		return text, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = t.conf.InitialBackoff
	bo.MaxInterval = 10 * t.conf.InitialBackoff

	text, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(t.conf.MaxRetries)),
		backoff.WithMaxElapsedTime(t.conf.MaxElapsedTime))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		t.logger.ErrorWithFields(err, "Transcript fetch gave up", map[string]interface{}{
			"video_id": videoID,
			"attempts": attempt,
		})
		return fmt.Sprintf("%s: %v", domain.TranscriptFailureSentinel, err), nil
	}

	return text, nil
}

func (t *transcriptFetcher) fetchOnce(ctx context.Context, videoID string) (string, error) {
	endpoint, err := url.Parse(t.conf.ApiUrl)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("parse transcript api url: %w", err))
	}
	query := endpoint.Query()
	query.Set("video_id", videoID)
	if t.conf.Language != "" {
		query.Set("lang", t.conf.Language)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	if t.authorizer != nil {
		token, err := t.authorizer.Authorize(ctx)
		if err != nil {
			return "", err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	body, err := t.fetcher.FetchContent(req)
	if err != nil {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) && !statusErr.Retryable() {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	var resp transcriptResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", backoff.Permanent(fmt.Errorf("decode transcript response: %w", err))
	}

	text := resp.text()
	if text == "" {
		return "", backoff.Permanent(errEmptyTranscript)
	}
	return text, nil
}
