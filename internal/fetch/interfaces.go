package fetch

import "context"

// Fetcher defines the interface for retrieving the current image bytes.
type Fetcher interface {
	// Fetch performs a single blocking retrieval of the resource at url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
