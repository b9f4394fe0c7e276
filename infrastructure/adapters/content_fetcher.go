package adapters

import (
	"fmt"
	"io"
	"net/http"
	"seo-blog-generator/application/ports/outbound"
	"time"
)

const maxContentBytes = 5 * 1024 * 1024

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

// HTTPStatusError is returned for any non-200 response.
type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP request to %s returned non-OK status code: %d", e.URL, e.StatusCode)
}

// Retryable reports whether the status is worth another attempt.
func (e *HTTPStatusError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort, timeout time.Duration) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.String(),
			})
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		bodyPayload, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		statusErr := &HTTPStatusError{StatusCode: res.StatusCode, URL: req.URL.String()}
		c.logger.ErrorWithFields(statusErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return nil, statusErr
	}

	payload, err := io.ReadAll(io.LimitReader(res.Body, maxContentBytes))
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	return payload, nil
}
