package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Sender is implemented by the root client. R prepares a request bound to
// ctx; Send issues it and returns an error for transport failures and
// non-2xx statuses alike.
type Sender interface {
	R(ctx context.Context) *resty.Request
	Send(req *resty.Request, method, path string) (*resty.Response, error)
}

const (
	roadmapsPath = "/roadmaps"
	roadmapPath  = "/roadmaps/{id}"
)

// decode hands the body straight to out's decoder. Going through
// json.Unmarshal would reject empty or non-JSON 2xx bodies before out sees
// them; the response types keep any body verbatim instead.
func decode(resp *resty.Response, out json.Unmarshaler, op string) error {
	if err := out.UnmarshalJSON(resp.Body()); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
