// Package errors defines the status error the client SDK returns for
// non-2xx responses.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HTTPError reports a response whose status was outside the 2xx range.
//
// The client never translates it: callers read StatusCode and Body to decide
// whether to retry, notify or give up.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       []byte // raw response body, may be empty
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if detail := e.Detail(); detail != "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, detail)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// Payload returns the decoded JSON body, or nil when the body is empty or
// not JSON.
func (e *HTTPError) Payload() any {
	if len(e.Body) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(e.Body, &v); err != nil {
		return nil
	}
	return v
}

// Detail returns the FastAPI-style "detail" message when the body carries
// one as a string.
func (e *HTTPError) Detail() string {
	m, ok := e.Payload().(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m["detail"].(string)
	return s
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// status error.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
