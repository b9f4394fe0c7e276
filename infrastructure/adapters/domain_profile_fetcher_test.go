package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const landingPage = `<!doctype html>
<html>
<head>
  <title>
    Example   Shop
  </title>
  <meta name="description" content="Routers, switches and   home networking gear">
  <meta property="og:description" content="ignored">
</head>
<body>
  <h1>Home networking made simple</h1>
  <h2>Routers</h2>
  <h3>Not a profile heading</h3>
  <h2>  </h2>
  <h2>Switches</h2>
</body>
</html>`

func TestParseDomainProfile(t *testing.T) {
	profile, err := parseDomainProfile("https://example.com", []byte(landingPage))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", profile.URL)
	assert.Equal(t, "Example Shop", profile.Title)
	assert.Equal(t, "Routers, switches and home networking gear", profile.Description)
	assert.Equal(t, []string{"Home networking made simple", "Routers", "Switches"}, profile.Headings)
}

func TestParseDomainProfile_OpenGraphFallback(t *testing.T) {
	page := `<html><head>
<meta property="og:title" content="OG Shop">
<meta property="og:description" content="OG description">
</head><body></body></html>`

	profile, err := parseDomainProfile("https://example.com", []byte(page))
	require.NoError(t, err)

	assert.Equal(t, "OG Shop", profile.Title)
	assert.Equal(t, "OG description", profile.Description)
	assert.Empty(t, profile.Headings)
}

func TestParseDomainProfile_CapsHeadings(t *testing.T) {
	page := "<html><body>"
	for i := 0; i < 30; i++ {
		page += "<h2>heading</h2>"
	}
	page += "</body></html>"

	profile, err := parseDomainProfile("https://example.com", []byte(page))
	require.NoError(t, err)
	assert.Len(t, profile.Headings, maxProfileHeadings)
}

func TestDomainProfileFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(landingPage))
	}))
	defer server.Close()

	logger := newTestLogger()
	profile, err := NewDomainProfileFetcher(NewContentFetcher(logger, 5*time.Second), logger).
		Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Example Shop", profile.Title)
}

func TestDomainProfileFetcher_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	logger := newTestLogger()
	_, err := NewDomainProfileFetcher(NewContentFetcher(logger, 5*time.Second), logger).
		Fetch(context.Background(), server.URL)

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.False(t, statusErr.Retryable())
}

func TestDomainProfileFetcher_BadURL(t *testing.T) {
	logger := newTestLogger()
	_, err := NewDomainProfileFetcher(NewContentFetcher(logger, time.Second), logger).
		Fetch(context.Background(), "://not a url")
	assert.Error(t, err)
}
