package client

import (
	"net/http"

	errs "github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/errors"
)

// HTTPError is returned for responses outside the 2xx range. Network errors
// and timeouts are returned as the transport produced them.
type HTTPError = errs.HTTPError

// StatusCode returns the HTTP status carried by err, or 0 if err is not an
// *HTTPError.
func StatusCode(err error) int { return errs.StatusCode(err) }

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool { return StatusCode(err) == http.StatusNotFound }
