// Package testutil provides fixtures for tests that drive plugport end to
// end: a fake plugin catalog, config files and plugin archives.
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/glorpus-work/plugport/pkg/archive"
	"github.com/stretchr/testify/require"
)

// CatalogServer is a fake plugin catalog. It answers the listing and hot
// endpoints with fixed bodies and serves archives from a directory.
type CatalogServer struct {
	Server *httptest.Server
	URL    string

	listingHits atomic.Int32
}

// NewCatalogServer starts a catalog answering plugins.php with listing,
// plugins_hot.php with hot and plugins/<file> from archiveDir. The server is
// closed when the test ends.
func NewCatalogServer(t *testing.T, listing, hot, archiveDir string) *CatalogServer {
	t.Helper()
	cs := &CatalogServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("/plugins.php", func(w http.ResponseWriter, _ *http.Request) {
		cs.listingHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listing))
	})
	mux.HandleFunc("/plugins_hot.php", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hot))
	})
	if archiveDir != "" {
		mux.Handle("/plugins/", http.StripPrefix("/plugins/", http.FileServer(http.Dir(archiveDir))))
	}

	cs.Server = httptest.NewServer(mux)
	cs.URL = cs.Server.URL
	t.Cleanup(cs.Server.Close)
	return cs
}

// ListingHits returns how often the listing endpoint was called.
func (cs *CatalogServer) ListingHits() int {
	return int(cs.listingHits.Load())
}

// WriteConfig writes a config file for appRoot and catalogURL into dir and
// returns its path. Migrations use the pp_ table prefix and no database.
func WriteConfig(t *testing.T, dir, appRoot, catalogURL string) string {
	t.Helper()
	content := `portal:
  app_root: ` + appRoot + `
  host: portal.test
  engine_version: "7.4"
  framework_version: 2.12.2
catalog:
  url: ` + catalogURL + `
  promo_url: http://promo.test
  timeout: 2s
database:
  driver: mysql
  table_prefix: pp_
settings:
  output_format: table
  log_level: error
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// WriteFiles writes slash separated paths with their content below dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// BuildArchive writes files into a fresh directory and packs it into a zip
// at archivePath.
func BuildArchive(t *testing.T, archivePath string, files map[string]string) {
	t.Helper()
	src := t.TempDir()
	WriteFiles(t, src, files)
	require.NoError(t, os.MkdirAll(filepath.Dir(archivePath), 0o755))
	require.NoError(t, archive.NewManager().Create(context.Background(), src, archivePath))
}
