package adapters

import (
	"context"
	"seo-blog-generator/application/ports/outbound"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCompleter struct {
	calls atomic.Int32
}

func (c *countingCompleter) Complete(context.Context, outbound.CompletionRequest) (string, error) {
	c.calls.Add(1)
	return "{}", nil
}

func TestNewRateLimitedCompleter_DisabledReturnsNext(t *testing.T) {
	next := &countingCompleter{}
	assert.Same(t, next, NewRateLimitedCompleter(next, 0))
}

func TestRateLimitedCompleter_WaitsForToken(t *testing.T) {
	next := &countingCompleter{}
	completer := NewRateLimitedCompleter(next, 1)

	_, err := completer.Complete(context.Background(), outbound.CompletionRequest{Task: "intro"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = completer.Complete(ctx, outbound.CompletionRequest{Task: "intro"})
	assert.Error(t, err)
	assert.Equal(t, int32(1), next.calls.Load())
}
