package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request identifier so client log lines can be
// matched with backend logs.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Every request sent through the client gets a fresh [RequestIDHeader] value
// unless the caller already set one.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) == "" {
				req.SetHeader(RequestIDHeader, NewRequestID())
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
