package adapters

import (
	"context"
	"errors"
	"seo-blog-generator/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedTranscriptFetcher_HitSkipsFetch(t *testing.T) {
	cache := newMemoryCache()
	cache.items["dQw4w9WgXcQ"] = "cached transcript"
	next := &countingFetcher{transcript: "fresh transcript"}

	transcript, err := NewCachedTranscriptFetcher(cache, next, newTestLogger()).Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "cached transcript", transcript)
	assert.Zero(t, next.calls)
}

func TestCachedTranscriptFetcher_MissStoresTranscript(t *testing.T) {
	cache := newMemoryCache()
	next := &countingFetcher{transcript: "fresh transcript"}
	fetcher := NewCachedTranscriptFetcher(cache, next, newTestLogger())

	for i := 0; i < 2; i++ {
		transcript, err := fetcher.Fetch(context.Background(), "dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, "fresh transcript", transcript)
	}
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, "fresh transcript", cache.items["dQw4w9WgXcQ"])
}

func TestCachedTranscriptFetcher_DoesNotCacheFailures(t *testing.T) {
	for _, transcript := range []string{"", domain.TranscriptFailureSentinel + ": HTTP 503"} {
		cache := newMemoryCache()
		next := &countingFetcher{transcript: transcript}

		got, err := NewCachedTranscriptFetcher(cache, next, newTestLogger()).Fetch(context.Background(), "dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, transcript, got)
		assert.Zero(t, cache.saves)
	}
}

func TestCachedTranscriptFetcher_CacheErrorsAreIgnored(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("cache down")
	cache.saveErr = errors.New("cache down")
	next := &countingFetcher{transcript: "fresh transcript"}

	transcript, err := NewCachedTranscriptFetcher(cache, next, newTestLogger()).Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "fresh transcript", transcript)
	assert.Equal(t, 1, next.calls)
}

func TestCachedTranscriptFetcher_FetchErrorPassesThrough(t *testing.T) {
	next := &countingFetcher{err: context.Canceled}

	_, err := NewCachedTranscriptFetcher(newMemoryCache(), next, newTestLogger()).Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, context.Canceled)
}
