// Package fsutil provides the filesystem helpers used by the plugin installer:
// permission constants, directory preparation, atomic moves and plugin key
// parsing from file names.
package fsutil

// File and directory permission constants.
const (
	FileModeDefault = 0o644 // -rw-r--r--
	FileModeSecure  = 0o640 // -rw-r-----

	DirModeDefault = 0o755 // drwxr-xr-x
	DirModeSecure  = 0o750 // drwxr-x---
)
