package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// IDGenerator produces correlation ids for outbound requests.
type IDGenerator interface {
	Generate() string
}

// NewHTTPClient creates a new HTTPClient with a default-configured resty
// client. When ids is non-nil every request without an explicit
// X-Request-ID header gets one from ids.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(ids IDGenerator) *HTTPClient {
	client := resty.New()
	if ids != nil {
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) == "" {
				req.SetHeader(RequestIDHeader, ids.Generate())
			}
			return nil
		})
	}

	return &HTTPClient{Client: client}
}
