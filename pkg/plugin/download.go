package plugin

import (
	"context"
	"net/url"
	"strings"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/download"
	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/glorpus-work/plugport/pkg/fsutil"
)

// DefaultArchiveURL is <catalogURL>/plugins/<key>.zip.
func DefaultArchiveURL(catalogURL, key string) string {
	return strings.TrimRight(catalogURL, "/") + "/" + RelArchivePath(key)
}

// Download fetches the archive of key into plugins/<key>.zip. An empty
// rawURL downloads from the catalog. checksum, when set, is the expected
// hex SHA-256 of the archive.
func (i *Installer) Download(ctx context.Context, key, rawURL, checksum string) (bool, Report) {
	var report Report

	if err := fsutil.ValidatePluginKey(key); err != nil {
		report.Add(err)
		return false, report
	}
	if i.downloader == nil {
		report.Addf("%v: no downloader configured", errors.ErrDownloadFailed)
		return false, report
	}
	if rawURL == "" {
		rawURL = DefaultArchiveURL(i.catalogURL, key)
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		report.Addf("%v: invalid url %q", errors.ErrDownloadFailed, rawURL)
		return false, report
	}

	report.Addf("downloading %s from %s", key, u.Redacted())
	path, err := i.downloader.Fetch(ctx, download.Item{
		URL:      u,
		Checksum: checksum,
		Filename: key + ArchiveExt,
	}, download.Options{Dir: i.layout.PluginsDir()})
	if err != nil {
		logger.Warn("download failed", logger.Fields{"plugin": key, "error": err})
		report.Add(err)
		return false, report
	}

	logger.Debug("archive stored", logger.Fields{"plugin": key, "path": path})
	report.Addf("downloaded %s", RelArchivePath(key))
	return true, report
}
