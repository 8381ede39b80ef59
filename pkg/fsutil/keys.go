package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/plugport/pkg/errors"
)

// PluginKeyFromPath derives a plugin key from a file path by taking the
// basename and stripping ext. It returns an error when the result is not a
// valid key or the name does not carry ext.
func PluginKeyFromPath(path, ext string) (string, error) {
	base := filepath.Base(filepath.ToSlash(path))
	if !strings.HasSuffix(base, ext) {
		return "", fmt.Errorf("%s does not end in %s: %w", path, ext, errors.ErrInvalidPluginKey)
	}
	key := strings.TrimSuffix(base, ext)
	if err := ValidatePluginKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// ValidatePluginKey rejects keys that are empty or could escape the plugins
// directory.
func ValidatePluginKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "":
		return fmt.Errorf("empty key: %w", errors.ErrInvalidPluginKey)
	case key == "." || key == "..":
		return fmt.Errorf("%q: %w", key, errors.ErrInvalidPluginKey)
	case strings.ContainsAny(key, `/\`):
		return fmt.Errorf("%q contains a path separator: %w", key, errors.ErrInvalidPluginKey)
	case strings.Contains(key, ".."):
		return fmt.Errorf("%q contains a traversal sequence: %w", key, errors.ErrInvalidPluginKey)
	case strings.ContainsRune(key, 0):
		return fmt.Errorf("%q contains a NUL byte: %w", key, errors.ErrInvalidPluginKey)
	}
	return nil
}

// ListKeys returns the sorted plugin keys of the regular files in dir that
// end in ext. Names that do not yield a valid key are skipped. A missing dir
// yields no keys.
func ListKeys(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var keys []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		key, err := PluginKeyFromPath(entry.Name(), ext)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
