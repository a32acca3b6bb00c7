package client

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"
)

// debugTransport dumps each request and response at debug level.
//
// Enable it with ROADMAP_DEBUG=true, DEBUG=true or WithDebugLogging(true)
// when troubleshooting slow generations or malformed payloads. Dumps carry
// full bodies.
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		safely(func() {
			dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		})
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		safely(func() {
			dt.log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		})
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		safely(func() {
			dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		})
	}
	return resp, nil
}
