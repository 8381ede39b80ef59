// Package plugin installs plugin archives into an application root: it
// extracts the archive, reads the manifest, reports declared dependencies,
// applies the bundled SQL migration and runs the post-install hook.
package plugin

import (
	"context"
	"fmt"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/download"
	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/glorpus-work/plugport/pkg/fsutil"
	"github.com/glorpus-work/plugport/pkg/model"
)

// Installer implements the plugin install workflow. Collaborators are
// injected; hooks and downloader may be nil.
type Installer struct {
	layout     Layout
	env        Environment
	config     ConfigReader
	db         SQLExecutor
	archiver   Archiver
	hooks      HookExecutor
	downloader download.Manager
	catalogURL string
}

// Options carries the optional collaborators of an Installer.
type Options struct {
	Hooks      HookExecutor
	Downloader download.Manager
	// CatalogURL is the base URL archives are downloaded from when no
	// explicit URL is given.
	CatalogURL string
}

// NewInstaller creates an installer for the application rooted at layout.
func NewInstaller(layout Layout, env Environment, cfg ConfigReader, db SQLExecutor, archiver Archiver, opts Options) *Installer {
	return &Installer{
		layout:     layout,
		env:        env,
		config:     cfg,
		db:         db,
		archiver:   archiver,
		hooks:      opts.Hooks,
		downloader: opts.Downloader,
		catalogURL: opts.CatalogURL,
	}
}

// Layout returns the file layout the installer works on.
func (i *Installer) Layout() Layout {
	return i.layout
}

// Install installs the plugin archive plugins/<key>.zip. It returns false
// when a precondition fails, the archive cannot be extracted or the manifest
// is missing or invalid. Dependency, migration and hook problems only add
// report lines.
func (i *Installer) Install(ctx context.Context, key string, allowReinstall bool) (bool, Report) {
	var report Report
	report.Addf("installing %s", key)

	if err := fsutil.ValidatePluginKey(key); err != nil {
		report.Add(err)
		return false, report
	}

	if !fsutil.Exists(i.layout.ArchivePath(key)) {
		report.Addf("%v: %s", errors.ErrArchiveNotFound, RelArchivePath(key))
		return false, report
	}

	reinstall := fsutil.Exists(i.layout.ManifestPath(key))
	if reinstall {
		report.Addf("%v: %s", errors.ErrAlreadyInstalled, RelManifestPath(key))
		if !allowReinstall {
			return false, report
		}
		report.Addf("reinstalling %s", key)
	}

	files, err := i.archiver.ExtractAll(ctx, i.layout.ArchivePath(key), i.layout.Root)
	if err != nil {
		logger.Warn("extraction failed", logger.Fields{"plugin": key, "error": err})
		report.Add(errors.Wrap(ensureExtractionErr(err), RelArchivePath(key)))
		return false, report
	}
	report.Addf("extracted %d files from %s", len(files), RelArchivePath(key))

	if !fsutil.Exists(i.layout.ManifestPath(key)) {
		report.Addf("%v: %s", errors.ErrManifestMissing, RelManifestPath(key))
		return false, report
	}

	manifest, err := model.ParseManifestFromPath(i.layout.ManifestPath(key))
	if err != nil {
		report.Addf("%s: %v", RelManifestPath(key), err)
		return false, report
	}
	if manifest.Key != key {
		logger.Warn("manifest key differs from archive name", logger.Fields{"plugin": key, "manifest_key": manifest.Key})
	}
	report.Addf("plugin: %s (%s), author: %s, version: %s, installed",
		manifest.Key, manifest.Name, manifest.Author, manifest.Version)

	report.Append(DependencyReport(manifest.Depends, i.env))
	report.Append(i.Migrate(ctx, key))
	report.Append(i.runPostInstallHook(ctx, key, manifest, reinstall))

	report.Addf("plugin installation complete")
	logger.Debug("plugin installed", logger.Fields{"plugin": key, "version": manifest.Version})
	return true, report
}

func ensureExtractionErr(err error) error {
	if errors.Is(err, errors.ErrExtraction) {
		return err
	}
	return fmt.Errorf("%w: %w", errors.ErrExtraction, err)
}
