//go:generate mockgen -destination=mocks/plugin.go . ConfigReader,SQLExecutor,Archiver,HookExecutor
package plugin

import (
	"context"

	"github.com/glorpus-work/plugport/pkg/hooks"
)

// ConfigReader looks up configuration values by dotted key.
type ConfigReader interface {
	GetValue(key string) (string, error)
}

// SQLExecutor executes a single SQL statement.
type SQLExecutor interface {
	ExecSQL(ctx context.Context, stmt string) error
}

// Archiver unpacks and builds plugin archives.
type Archiver interface {
	// ExtractAll extracts every regular file of the archive below destDir and
	// returns the written paths relative to destDir.
	ExtractAll(ctx context.Context, archivePath, destDir string) ([]string, error)
	// Create packs sourceDir into a new archive at archivePath.
	Create(ctx context.Context, sourceDir, archivePath string) error
}

// HookExecutor runs a plugin hook script.
type HookExecutor interface {
	Execute(ctx context.Context, hook hooks.Hook, hc hooks.Context) error
}
