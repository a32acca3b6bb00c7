package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	errs "github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/errors"
)

// Request and response hooks. Both are instrumentation only: they run inside
// safely, so a panicking log sink or collector cannot stop a request or hide
// its result.

func (c *Client) beforeRequest(id, method, path string) {
	safely(func() {
		c.log.Info().
			Str("request_id", id).
			Str("method", strings.ToUpper(method)).
			Str("path", path).
			Msgf("[API] %s %s", strings.ToUpper(method), path)
	})
}

func (c *Client) afterResponse(id, method, path string, err error, elapsed time.Duration) {
	safely(func() {
		c.metrics.observe(method, outcomeOf(err), elapsed)
	})
	if err == nil {
		return
	}
	safely(func() {
		ev := c.log.Error().
			Str("request_id", id).
			Str("method", strings.ToUpper(method)).
			Str("path", path).
			Dur("elapsed", elapsed)

		var he *errs.HTTPError
		if errors.As(err, &he) {
			ev = ev.Int("status_code", he.StatusCode)
			if p := he.Payload(); p != nil {
				ev.Interface("payload", p).Msg("[API] response error")
				return
			}
		}
		ev.Err(err).Msg("[API] response error")
	})
}

const (
	outcomeSuccess   = "success"
	outcomeHTTPError = "http_error"
	outcomeTransport = "transport_error"
)

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	var he *errs.HTTPError
	if errors.As(err, &he) {
		return outcomeHTTPError
	}
	return outcomeTransport
}

// safely runs fn and discards any panic it raises.
func safely(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// restyLogger routes resty's internal warnings through zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) {
	safely(func() { r.l.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...))) })
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	safely(func() { r.l.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, v...))) })
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	safely(func() { r.l.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...))) })
}
