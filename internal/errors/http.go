package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewHTTPError builds a status error for the given exchange.
func NewHTTPError(method, path string, statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		Method:     strings.ToUpper(method),
		Path:       path,
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Body:       append([]byte(nil), body...),
	}
}

// IsSuccess reports whether statusCode is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
