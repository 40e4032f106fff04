package sis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client executes authenticated JSON requests against one SIS session with
// retry, backoff and request pacing. It is safe for concurrent use; the rate
// limiter is shared across all callers so the endpoint sees one paced stream.
type Client struct {
	session      *Session
	http         *http.Client
	limiter      *rate.Limiter
	maxRetries   int
	initialDelay time.Duration
	pageSize     int
	log          *zap.Logger
}

// NewClient builds a client for the given session. Zero config values fall
// back to the documented defaults.
func NewClient(cfg Config, session *Session, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	initialDelay := time.Duration(cfg.InitialDelaySeconds) * time.Second
	if initialDelay <= 0 {
		initialDelay = 5 * time.Second
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 500
	}

	timeout := cfg.RequestTimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		session: session,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		limiter:      limiter,
		maxRetries:   maxRetries,
		initialDelay: initialDelay,
		pageSize:     pageSize,
		log:          log,
	}
}

// Do executes one logical request. Transient failures (429, 5xx, network
// errors) are retried up to maxRetries times with the server's Retry-After
// delay when given, exponential backoff otherwise. Client errors fail
// immediately. On success the JSON response body is decoded into out when
// out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	attempts := c.maxRetries + 1
	backoff := c.initialDelay
	var lastStatus int
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		status, retryAfter, err := c.once(ctx, method, path, payload, out)
		if err == nil && status < 400 {
			return nil
		}
		lastStatus, lastErr = status, err

		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return err
		}
		if err == nil && !retryableStatus(status) {
			return &RequestError{Method: method, Path: path, Status: status, Attempts: attempt}
		}
		if attempt == attempts {
			break
		}

		wait := retryAfter
		if wait <= 0 {
			wait = backoff
			backoff *= 2
		}

		c.log.Warn("request failed, retrying",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return &RequestError{Method: method, Path: path, Status: lastStatus, Attempts: attempts, Err: lastErr}
}

// once performs a single HTTP attempt. For status >= 400 it returns the
// status and any Retry-After delay instead of decoding; the retry decision
// belongs to Do.
func (c *Client) once(ctx context.Context, method, path string, payload []byte, out any) (int, time.Duration, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.session.BaseURL+path, body)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build request: %w", err)
	}

	token, err := c.session.Tokens.Token(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to obtain token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Drain a little of the body so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return resp.StatusCode, parseRetryAfter(resp.Header.Get("Retry-After")), nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, 0, fmt.Errorf("failed to decode response: %w", err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode, 0, nil
}

// parseRetryAfter reads a Retry-After header value: either delay seconds or
// an HTTP-date. Any usable value is floored at one second; zero means the
// header was absent or unreadable.
func parseRetryAfter(h string) time.Duration {
	h = strings.TrimSpace(h)
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(h); err == nil {
		return floorSecond(time.Duration(secs) * time.Second)
	}
	if t, err := http.ParseTime(h); err == nil {
		return floorSecond(time.Until(t))
	}
	return 0
}

func floorSecond(d time.Duration) time.Duration {
	if d < time.Second {
		return time.Second
	}
	return d
}
