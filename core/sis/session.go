package sis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Session identifies one remote SIS endpoint: its base URL and the token
// source that authenticates against it. It is passed explicitly to the
// client; there is no package-level session state.
type Session struct {
	// BaseURL is the API root without a trailing slash.
	BaseURL string

	// Tokens supplies a valid bearer token for each request.
	Tokens TokenSource
}

// NewSession builds a Session, normalizing the base URL.
func NewSession(baseURL string, tokens TokenSource) *Session {
	return &Session{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Tokens:  tokens,
	}
}

// SessionFromConfig builds a Session with the token source the config
// implies: client-credentials when a client id is configured, otherwise the
// static token.
func SessionFromConfig(cfg Config) *Session {
	var tokens TokenSource
	if cfg.ClientID != "" {
		tokens = NewClientCredentialsTokenSource(cfg.TokenURL, cfg.ClientID, cfg.ClientSecret)
	} else {
		tokens = StaticTokenSource(cfg.Token)
	}
	return NewSession(cfg.BaseURL, tokens)
}

// TokenSource supplies a bearer token valid for the duration of one request.
// Refresh and expiry are the source's responsibility, never the client's.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token forever. Suitable for long-lived
// API keys and for tests.
type StaticTokenSource string

// Token returns the fixed token.
func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("no token configured")
	}
	return string(s), nil
}

// refreshMargin is how long before expiry a cached token is considered stale,
// so a token never runs out mid-request.
const refreshMargin = 60 * time.Second

// ClientCredentialsTokenSource implements the OAuth client-credentials flow
// against the SIS token endpoint, caching the token until shortly before it
// expires. Concurrent callers share one refresh.
type ClientCredentialsTokenSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	http         *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewClientCredentialsTokenSource builds a token source for the given OAuth
// endpoint and credentials.
func NewClientCredentialsTokenSource(tokenURL, clientID, clientSecret string) *ClientCredentialsTokenSource {
	return &ClientCredentialsTokenSource{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		http:         &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns the cached token, refreshing it when it is missing or within
// the refresh margin of expiry.
func (s *ClientCredentialsTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expiry.Add(-refreshMargin)) {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty token")
	}

	s.token = payload.AccessToken
	s.expiry = time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	return s.token, nil
}
