package fetch

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Default client configuration
const (
	DefaultTimeout = 15 * time.Second
	UserAgent      = "imgwatch/1.0"
)

// Client fetches image bytes over HTTP(S). One synchronous GET per call, no
// retry, no caching headers. Each tick performs an independent request.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a new fetch client with the given request timeout
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: UserAgent,
	}
}

// Fetch retrieves the resource at url and returns its raw bytes. On
// transport failure, non-2xx status, or a short body it returns a *Error
// instead of partial data.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Kind: KindTransport, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{URL: url, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Kind: KindBody, Err: err}
	}

	return data, nil
}
