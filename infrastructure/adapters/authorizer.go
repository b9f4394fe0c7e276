package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/config"
	"strings"
	"sync"
	"time"
)

type Authorizer interface {
	Authorize(ctx context.Context) (string, error)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// tokenExpiryMargin renews a token this long before it expires.
const tokenExpiryMargin = 30 * time.Second

type cognitoAuthorizer struct {
	logger  outbound.LoggerPort
	conf    *config.AuthorizerConfig
	fetcher ContentFetcher

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewCognitoAuthorizer(logger outbound.LoggerPort, conf *config.AuthorizerConfig, fetcher ContentFetcher) Authorizer {
	return &cognitoAuthorizer{
		logger:  logger,
		conf:    conf,
		fetcher: fetcher,
	}
}

// Authorize returns a client-credentials access token, reusing the previous
// one until it is about to expire.
func (a *cognitoAuthorizer) Authorize(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Now().Before(a.expiresAt) {
		return a.token, nil
	}

	a.logger.Info("Authorizing with Cognito")
	clientCredentials := base64.StdEncoding.EncodeToString([]byte(a.conf.ClientID + ":" + a.conf.ClientSecret))

	requestBody := strings.NewReader("grant_type=client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.conf.TokenEndpoint, requestBody)
	if err != nil {
		a.logger.Error(err, "Failed to create the HTTP request")
		return "", err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+clientCredentials)

	body, err := a.fetcher.FetchContent(req)
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}

	var tokenResponse TokenResponse
	err = json.Unmarshal(body, &tokenResponse)
	if err != nil {
		a.logger.Error(err, "Failed to unmarshal the response body")
		return "", err
	}
	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	a.token = tokenResponse.AccessToken
	a.expiresAt = time.Now().Add(time.Duration(tokenResponse.ExpiresIn)*time.Second - tokenExpiryMargin)
	a.logger.Info("Successfully authorized with Cognito")

	return a.token, nil
}
