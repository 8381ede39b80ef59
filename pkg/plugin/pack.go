package plugin

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/glorpus-work/plugport/pkg/fsutil"
	"github.com/glorpus-work/plugport/pkg/model"
)

// Pack builds plugins/<key>.zip from a source tree laid out like the
// application root. The tree must carry a valid manifest for key.
func (i *Installer) Pack(ctx context.Context, key, sourceDir string) (string, error) {
	if err := fsutil.ValidatePluginKey(key); err != nil {
		return "", err
	}

	manifestPath := filepath.Join(sourceDir, filepath.FromSlash(RelManifestPath(key)))
	if !fsutil.Exists(manifestPath) {
		return "", errors.Wrap(errors.ErrManifestMissing, RelManifestPath(key))
	}
	manifest, err := model.ParseManifestFromPath(manifestPath)
	if err != nil {
		return "", err
	}
	if manifest.Key != key {
		return "", fmt.Errorf("manifest declares %q, expected %q: %w", manifest.Key, key, errors.ErrManifestInvalid)
	}

	archivePath := i.layout.ArchivePath(key)
	if err := fsutil.EnsureFileDir(archivePath); err != nil {
		return "", err
	}
	if err := i.archiver.Create(ctx, sourceDir, archivePath); err != nil {
		return "", err
	}
	return archivePath, nil
}
