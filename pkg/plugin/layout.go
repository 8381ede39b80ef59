package plugin

import (
	"path/filepath"
)

const (
	// PluginsDirName holds archives and manifests.
	PluginsDirName = "plugins"
	// DataDirName holds migrations and hook scripts.
	DataDirName = "data"

	// ArchiveExt is the extension of plugin archives.
	ArchiveExt = ".zip"
	// ManifestExt is the extension of plugin manifests.
	ManifestExt = ".json"
	// MigrationExt is the extension of plugin migrations.
	MigrationExt = ".sql"
)

// Layout resolves plugin file locations below an application root.
type Layout struct {
	Root string
}

// NewLayout returns a layout for root. Relative roots are made absolute.
func NewLayout(root string) Layout {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return Layout{Root: root}
}

// PluginsDir is the absolute plugins directory.
func (l Layout) PluginsDir() string {
	return filepath.Join(l.Root, PluginsDirName)
}

// DataDir is the absolute data directory.
func (l Layout) DataDir() string {
	return filepath.Join(l.Root, DataDirName)
}

// ArchivePath is the absolute path of plugins/<key>.zip.
func (l Layout) ArchivePath(key string) string {
	return filepath.Join(l.Root, RelArchivePath(key))
}

// ManifestPath is the absolute path of plugins/<key>.json.
func (l Layout) ManifestPath(key string) string {
	return filepath.Join(l.Root, RelManifestPath(key))
}

// MigrationPath is the absolute path of data/<key>.sql.
func (l Layout) MigrationPath(key string) string {
	return filepath.Join(l.Root, RelMigrationPath(key))
}

// RelArchivePath is plugins/<key>.zip with forward slashes, as used in reports.
func RelArchivePath(key string) string {
	return PluginsDirName + "/" + key + ArchiveExt
}

// RelManifestPath is plugins/<key>.json.
func RelManifestPath(key string) string {
	return PluginsDirName + "/" + key + ManifestExt
}

// RelMigrationPath is data/<key>.sql.
func RelMigrationPath(key string) string {
	return DataDirName + "/" + key + MigrationExt
}
