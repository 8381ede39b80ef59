package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WritableDirs lists the application directories the portal writes to while
// installing plugins, relative to the application root.
var WritableDirs = []string{
	"config",
	"plugins",
	"data",
	"public/portal/page",
	"public/portal",
	"src/app/Api",
	"src/app/Domain",
	"src/app/Model",
	"src/app/Common",
	"src/portal/Api",
}

// EnsureDir creates a directory and all necessary parent directories with DirModeDefault.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}

// PrepareDirs creates each directory under root if missing and sets its mode.
// Running it twice leaves the tree unchanged.
func PrepareDirs(root string, dirs []string, mode os.FileMode) ([]string, error) {
	prepared := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		target := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(target, mode); err != nil {
			return prepared, fmt.Errorf("failed to create %s: %w", target, err)
		}
		if err := os.Chmod(target, mode); err != nil {
			return prepared, fmt.Errorf("failed to chmod %s: %w", target, err)
		}
		prepared = append(prepared, target)
	}
	return prepared, nil
}
