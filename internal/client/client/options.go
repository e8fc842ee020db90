package client

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
	"github.com/dmitrijs2005/hotelpanel/internal/logging"
)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout sets the per-request timeout of the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithNavigator(n nav.Navigator) Option {
	return func(c *HTTPClient) { c.nav = n }
}

func WithNotifier(n nav.Notifier) Option {
	return func(c *HTTPClient) { c.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}
