package client

// This file defines functional options that configure the Client during
// construction. Options are applied after the environment has been read, so
// they take precedence over it.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithBaseURL overrides ROADMAP_API_URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL == "" {
			return errors.New("base url cannot be empty")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithTransport replaces the round tripper requests are sent through.
// The debug transport, when enabled, is installed on top of it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return errors.New("transport cannot be nil")
		}
		c.transport = rt
		return nil
	}
}

// WithLogger sets the logger used for request and failure lines.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level when
// enabled is true. Dumps include bodies; keep it out of production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithMetrics registers the client's collectors on reg instead of the
// process-wide default registry.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		c.metrics = NewMetrics(reg)
		return nil
	}
}

// ListOption adjusts the page requested by ListRoadmaps.
type ListOption func(*listParams)

type listParams struct {
	skip  int
	limit int
}

// WithSkip sets how many roadmaps to skip. Forwarded verbatim.
func WithSkip(n int) ListOption {
	return func(p *listParams) { p.skip = n }
}

// WithLimit sets the page size. Forwarded verbatim.
func WithLimit(n int) ListOption {
	return func(p *listParams) { p.limit = n }
}
