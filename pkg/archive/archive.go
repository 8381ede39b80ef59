// Package archive extracts plugin archives into the application root and
// builds them from a directory tree.
package archive

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/glorpus-work/plugport/pkg/fsutil"
	"github.com/mholt/archives"
)

// Manager handles archive extraction and creation operations.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// ExtractAll extracts every entry of the archive at archivePath below destDir,
// overwriting existing files. It returns the slash-separated paths of the
// regular files written.
func (am *Manager) ExtractAll(ctx context.Context, archivePath, destDir string) ([]string, error) {
	fsys, err := openArchive(ctx, archivePath)
	if err != nil {
		return nil, err
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := fsutil.EnsureDir(destDir); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	root, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination directory: %w", err)
	}

	var written []string
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		wrote, err := am.extractEntry(fsys, path, root, d)
		if err != nil {
			return err
		}
		if wrote {
			written = append(written, path)
		}
		return nil
	}

	if err := fs.WalkDir(fsys, ".", walkFn); err != nil {
		return written, errors.Wrapf(errors.ErrExtraction, "%s: %v", filepath.Base(archivePath), err)
	}
	return written, nil
}

// Create writes a zip archive of sourceDir's contents to archivePath.
func (am *Manager) Create(ctx context.Context, sourceDir, archivePath string) error {
	absolutePath, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for source directory: %w", err)
	}

	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absolutePath + string(os.PathSeparator): "",
	})
	if err != nil {
		return fmt.Errorf("failed to read files from disk: %w", err)
	}

	file, err := fsutil.CreateFilePerm(archivePath, fsutil.FileModeDefault)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", archivePath, err)
	}
	defer func() { _ = file.Close() }()

	if err := (archives.Zip{}).Archive(ctx, file, files); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	return file.Sync()
}

// openArchive opens archivePath as a filesystem and refuses anything that is
// not recognised as an archive.
func openArchive(ctx context.Context, archivePath string) (fs.FS, error) {
	info, err := os.Stat(archivePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrExtraction, "failed to open archive file: %v", err)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(errors.ErrExtraction, "%s is a directory", archivePath)
	}

	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrExtraction, "failed to open archive file: %v", err)
	}
	if _, ok := fsys.(*archives.ArchiveFS); !ok {
		return nil, errors.Wrapf(errors.ErrExtraction, "%s is not an archive", archivePath)
	}
	return fsys, nil
}

// extractEntry writes a single archive entry below root. It reports whether a
// regular file was written.
func (am *Manager) extractEntry(fsys fs.FS, path, root string, d fs.DirEntry) (bool, error) {
	if path == "." {
		return false, nil
	}

	targetPath := filepath.Join(root, filepath.FromSlash(path))
	if !strings.HasPrefix(targetPath, root+string(os.PathSeparator)) {
		return false, fmt.Errorf("archive contains illegal path: %s", path)
	}

	if d.IsDir() {
		return false, fsutil.EnsureDir(targetPath)
	}

	info, err := d.Info()
	if err != nil {
		return false, fmt.Errorf("failed to get file info for %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		// links and devices are never part of a plugin package
		return false, nil
	}

	return true, am.writeRegularFile(fsys, path, targetPath, info)
}

func (am *Manager) writeRegularFile(fsys fs.FS, path, targetPath string, info fs.FileInfo) error {
	srcFile, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer func() { _ = srcFile.Close() }()

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = fsutil.FileModeDefault
	}

	dstFile, err := fsutil.CreateFilePerm(targetPath, perm)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", targetPath, err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file %s: %w", path, err)
	}
	return nil
}
