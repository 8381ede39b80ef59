package cli

import "time"

// Default values for CLI flags and configurations.
const (
	// DefaultPage is the first market page.
	DefaultPage = 1
	// DefaultPerPage is the default number of market entries per page.
	DefaultPerPage = 20
	// DownloadTimeout bounds a single archive download.
	DownloadTimeout = 5 * time.Minute
	// OutputJSON selects JSON output.
	OutputJSON = "json"
)
