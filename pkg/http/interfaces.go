//go:generate mockgen -destination=mocks/http.go . Client
package http

import "context"

// Client is the outbound HTTP contract the catalog depends on.
type Client interface {
	// Get fetches rawURL and returns the response body. Any status other than
	// 200 is an error.
	Get(ctx context.Context, rawURL string) ([]byte, error)
}
