//go:generate mockgen -destination=mocks/download.go . Manager
package download

import (
	"context"
	"net/url"
)

// Manager downloads plugin archives into the plugins directory.
type Manager interface {
	// Fetch downloads item into opts.Dir and returns the absolute local file path.
	Fetch(ctx context.Context, item Item, opts Options) (string, error)
}

// Item represents one remote resource to download.
type Item struct {
	URL      *url.URL // source URL to download
	Checksum string   // optional hex-encoded SHA-256 checksum; if provided, will be verified
	Filename string   // file name inside opts.Dir; required
}

// Options control the behavior of the download manager.
type Options struct {
	Dir string // destination directory. Must be absolute.
	// Force downloads even when a file with a matching checksum is already present.
	Force bool
}
