package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/application/services"
	"seo-blog-generator/domain"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCompleter struct {
	prompts []string
}

func (r *recordingCompleter) Complete(_ context.Context, req outbound.CompletionRequest) (string, error) {
	r.prompts = append(r.prompts, req.Prompt)
	return `{"heading":"Visit us","content":"Shop with us"}`, nil
}

func TestIsPublicAddr(t *testing.T) {
	cases := map[string]bool{
		"93.184.216.34":       true,
		"2606:4700::1111":     true,
		"127.0.0.1":           false,
		"::1":                 false,
		"10.1.2.3":            false,
		"172.16.0.9":          false,
		"192.168.1.1":         false,
		"169.254.169.254":     false,
		"fe80::1":             false,
		"fd00::1":             false,
		"0.0.0.0":             false,
		"::":                  false,
		"100.64.0.1":          false,
		"::ffff:127.0.0.1":    false,
		"::ffff:93.184.216.34": true,
	}
	for raw, want := range cases {
		assert.Equal(t, want, isPublicAddr(netip.MustParseAddr(raw)), raw)
	}
}

func TestPublicContentFetcher_RefusesLoopback(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(landingPage))
	}))
	defer server.Close()

	logger := newTestLogger()
	profiles := NewDomainProfileFetcher(NewPublicContentFetcher(logger, 5*time.Second), logger)

	_, err := profiles.Fetch(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrNonPublicAddress)
	assert.Zero(t, hits.Load())
}

func TestDomainProfileFetcher_RejectsNonHTTPSchemes(t *testing.T) {
	logger := newTestLogger()
	profiles := NewDomainProfileFetcher(NewPublicContentFetcher(logger, time.Second), logger)

	for _, target := range []string{"file:///etc/passwd", "gopher://example.com", "ftp://example.com/x"} {
		_, err := profiles.Fetch(context.Background(), target)
		assert.ErrorIs(t, err, errUnsupportedScheme, target)
	}

	_, err := profiles.Fetch(context.Background(), "https://")
	assert.ErrorContains(t, err, "has no host")
}

func TestDomainAligner_RefusedProfileFallsBackToURL(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`<html><head><title>Internal Admin</title></head></html>`))
	}))
	defer server.Close()

	logger := newTestLogger()
	completer := &recordingCompleter{}
	profiles := NewDomainProfileFetcher(NewPublicContentFetcher(logger, 5*time.Second), logger)
	step := services.NewDomainAlignerStep(logger, completer, profiles)

	blog := domain.NewBlogContext("run-1", domain.NewPipelineRequest("https://youtu.be/dQw4w9WgXcQ", server.URL, "")).
		WithCombinedSections()
	next, err := step.Run(context.Background(), blog)
	require.NoError(t, err)

	require.NotNil(t, next.DomainAlignedCTA)
	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0], server.URL)
	assert.NotContains(t, completer.prompts[0], "Internal Admin")
	assert.Zero(t, hits.Load())
}
