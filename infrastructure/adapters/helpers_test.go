package adapters

import (
	"context"
	"io"
	"seo-blog-generator/application/ports/outbound"
	"sync"
)

func newTestLogger() outbound.LoggerPort {
	return NewZerologWrapperWithOptions(io.Discard, "debug", false)
}

type staticAuthorizer struct {
	token string
	err   error
}

func (a *staticAuthorizer) Authorize(context.Context) (string, error) {
	return a.token, a.err
}

type memoryCache struct {
	mu      sync.Mutex
	items   map[string]string
	getErr  error
	saveErr error
	saves   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]string{}}
}

func (m *memoryCache) Get(_ context.Context, videoID string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	transcript, ok := m.items[videoID]
	return transcript, ok, nil
}

func (m *memoryCache) Save(_ context.Context, videoID string, transcript string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[videoID] = transcript
	return nil
}

type countingFetcher struct {
	transcript string
	err        error
	calls      int
}

func (c *countingFetcher) Fetch(context.Context, string) (string, error) {
	c.calls++
	return c.transcript, c.err
}
