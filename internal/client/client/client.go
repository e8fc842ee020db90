package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
	"github.com/dmitrijs2005/hotelpanel/internal/client/session"
	"github.com/dmitrijs2005/hotelpanel/internal/common"
	"github.com/dmitrijs2005/hotelpanel/internal/logging"
	"github.com/google/uuid"
)

// Client is the API surface the services depend on.
type Client interface {
	BaseURL() string
	Do(ctx context.Context, method, path string, body, out any) error
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// SessionStore is the part of session.Store the client reads and resets.
type SessionStore interface {
	Get() session.Session
	Clear(ctx context.Context) error
}

type HTTPClient struct {
	baseURL  string
	http     *http.Client
	sessions SessionStore
	nav      nav.Navigator
	notifier nav.Notifier
	log      logging.Logger
	metrics  *Metrics
	newID    func() string
}

var _ Client = (*HTTPClient)(nil)

func New(baseURL string, sessions SessionStore, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		sessions: sessions,
		log:      logging.Nop(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) BaseURL() string { return c.baseURL }

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do sends one request and decodes the unwrapped payload into out, which
// may be nil.
func (c *HTTPClient) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	requestID := c.authorize(req)
	log := c.log.With("method", method, "path", path, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.onTransportError(ctx, log, method, start, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.observe(method, strconv.Itoa(resp.StatusCode), start)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.onUnauthorized(ctx, log)
		return &APIError{Status: resp.StatusCode, Message: message(raw)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		log.Warn(ctx, "request rejected", "status", resp.StatusCode)
		return &APIError{Status: resp.StatusCode, Message: message(raw)}
	}

	if out == nil {
		return nil
	}
	payload := Unwrap(raw)
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// authorize is the request interceptor. It returns the request id it set.
func (c *HTTPClient) authorize(req *http.Request) string {
	req.Header.Set("Content-Type", "application/json")
	id := c.newID()
	req.Header.Set(common.RequestIDHeaderName, id)
	if s := c.sessions.Get(); s.Token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+s.Token)
	}
	return id
}

func (c *HTTPClient) onTransportError(ctx context.Context, log logging.Logger, method string, start time.Time, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.observe(method, statusCanceled, start)
		return ctxErr
	}

	c.observe(method, statusNetworkError, start)
	log.Warn(ctx, "backend unreachable", "error", err)
	if c.notifier != nil {
		c.notifier.Notify(fmt.Sprintf("Cannot connect to server at %s. Is the backend running?", c.baseURL))
	}
	return &NetworkError{BaseURL: c.baseURL, Err: err}
}

// onUnauthorized drops the session and sends the user to login. The clear
// must not be skipped because the caller gave up on the request.
func (c *HTTPClient) onUnauthorized(ctx context.Context, log logging.Logger) {
	if err := c.sessions.Clear(context.WithoutCancel(ctx)); err != nil {
		log.Error(ctx, "failed to clear session after 401", "error", err)
	}
	if c.metrics != nil {
		c.metrics.SessionResets.Inc()
	}
	if c.nav != nil && c.nav.Current() != nav.Login {
		c.nav.Navigate(nav.Login)
	}
	log.Info(ctx, "session expired, redirected to login")
}

func (c *HTTPClient) observe(method, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RequestsTotal.WithLabelValues(method, status).Inc()
	c.metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// IsNetwork reports whether err means no response was received.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
