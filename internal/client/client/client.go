package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/session"
	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Config holds the transport settings.
type Config struct {
	BaseURL string
	// Timeout bounds each request; zero means no per-request timeout.
	Timeout time.Duration
	// RateLimit caps outbound requests per second; zero disables pacing.
	RateLimit float64
}

// SessionLostHandler is invoked after a 401 has cleared the credential.
type SessionLostHandler func(ctx context.Context)

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithSessionLostHandler(h SessionLostHandler) Option {
	return func(c *HTTPClient) { c.onSessionLost = h }
}

type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	store   session.Store
	limiter *rate.Limiter
	log     logging.Logger

	mu            sync.RWMutex
	onSessionLost SessionLostHandler
}

func New(cfg Config, store session.Store, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    &http.Client{},
		store:   store,
		log:     logging.Nop{},
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetSessionLostHandler replaces the 401 hook. The auth controller is built
// after the client, so it registers itself here.
func (c *HTTPClient) SetSessionLostHandler(h SessionLostHandler) {
	c.mu.Lock()
	c.onSessionLost = h
	c.mu.Unlock()
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, in, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out)
}

// Download fetches path and returns the raw response body.
func (c *HTTPClient) Download(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, "*/*")
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	data, err := c.do(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, accept string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	token, ok, err := c.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if ok {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	log.Debug(ctx, "request sent", "authenticated", ok)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %w", ErrUnavailable, method, path, err)
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "bytes", len(data), "elapsed", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	if resp.StatusCode == http.StatusUnauthorized {
		c.sessionLost(ctx)
	}
	return nil, apiErr
}

// sessionLost clears the credential and then notifies the handler. The clear
// must finish before navigation so nothing sees a stale token afterwards.
func (c *HTTPClient) sessionLost(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credential after 401", "error", err)
	}

	c.mu.RLock()
	h := c.onSessionLost
	c.mu.RUnlock()

	if h != nil {
		h(ctx)
	}
}

func errorMessage(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(status)
}
