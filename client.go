package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/api"
	errs "github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/errors"
)

// DefaultTimeout bounds every request. Roadmap generation on the backend can
// take well over a minute.
const DefaultTimeout = 120 * time.Second

// DefaultBaseURL is used when neither WithBaseURL nor ROADMAP_API_URL is set.
const DefaultBaseURL = "/api"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues roadmap requests against a single backend. It is built once
// and shared; all methods are safe for concurrent use.
type Client struct {
	baseURL   string
	http      *resty.Client
	log       zerolog.Logger
	metrics   *Metrics
	transport http.RoundTripper
	debug     bool
}

// New constructs a Client from the environment (see LoadConfig) and opts.
// Nothing is sent during construction.
func New(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: cfg.APIURL,
		http:    resty.New(),
		log:     log.Logger,
		debug:   cfg.Debug,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.metrics == nil {
		c.metrics = defaultMetrics()
	}

	base := c.transport
	if base == nil {
		base = c.http.GetClient().Transport
	}
	if c.debug {
		base = &debugTransport{base: base, log: c.log}
	}

	c.http.
		SetCookieJar(nil).
		SetTransport(base).
		SetLogger(restyLogger{l: c.log}).
		SetBaseURL(c.baseURL).
		SetTimeout(DefaultTimeout).
		SetHeader("Content-Type", "application/json")

	return c, nil
}

// BaseURL returns the address every request path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// R prepares a request bound to ctx.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// Send issues req as method path. The request is logged before it leaves;
// failures are logged and returned as-is. Non-2xx statuses become
// *HTTPError, everything else is the transport's own error.
func (c *Client) Send(req *resty.Request, method, path string) (*resty.Response, error) {
	target := resolvePath(req, path)
	id := uuid.NewString()

	c.beforeRequest(id, method, target)
	start := time.Now()

	resp, err := req.Execute(method, path)
	if err == nil && !errs.IsSuccess(resp.StatusCode()) {
		err = errs.NewHTTPError(method, target, resp.StatusCode(), resp.Body())
	}

	c.afterResponse(id, method, target, err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// resolvePath expands raw and escaped path params for log lines and errors.
func resolvePath(req *resty.Request, path string) string {
	if !strings.Contains(path, "{") {
		return path
	}
	for k, v := range req.RawPathParams {
		path = strings.ReplaceAll(path, "{"+k+"}", v)
	}
	for k, v := range req.PathParams {
		path = strings.ReplaceAll(path, "{"+k+"}", v)
	}
	return path
}

// --------------------------------------------------------------------
// Roadmap operations - delegated to internal/api
// --------------------------------------------------------------------

// CreateRoadmap asks the backend to generate a roadmap for query.
func (c *Client) CreateRoadmap(ctx context.Context, query string) (*Roadmap, error) {
	return api.CreateRoadmap(ctx, c, CreateRoadmapRequest{Query: query})
}

// ListRoadmaps returns a page of roadmap summaries. Without options it
// requests skip=0, limit=50.
func (c *Client) ListRoadmaps(ctx context.Context, opts ...ListOption) (*RoadmapList, error) {
	p := listParams{skip: api.DefaultSkip, limit: api.DefaultLimit}
	for _, opt := range opts {
		opt(&p)
	}
	return api.ListRoadmaps(ctx, c, p.skip, p.limit)
}

// GetRoadmap retrieves a single roadmap. A missing id surfaces as an
// *HTTPError with status 404.
func (c *Client) GetRoadmap(ctx context.Context, id string) (*Roadmap, error) {
	return api.GetRoadmap(ctx, c, id)
}

// DeleteRoadmap removes a roadmap.
func (c *Client) DeleteRoadmap(ctx context.Context, id string) error {
	return api.DeleteRoadmap(ctx, c, id)
}
