package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	errs "github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/errors"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// plainSender is a Sender without logging or metrics.
type plainSender struct{ c *resty.Client }

func newSender(baseURL string) *plainSender {
	return &plainSender{c: resty.New().SetBaseURL(baseURL).SetHeader("Content-Type", "application/json")}
}

func (p *plainSender) R(ctx context.Context) *resty.Request { return p.c.R().SetContext(ctx) }

func (p *plainSender) Send(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if !errs.IsSuccess(resp.StatusCode()) {
		return nil, errs.NewHTTPError(method, path, resp.StatusCode(), resp.Body())
	}
	return resp, nil
}
