package plugin_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/plugport/pkg/archive"
	"github.com/glorpus-work/plugport/pkg/model"
	"github.com/glorpus-work/plugport/pkg/plugin"
	"github.com/stretchr/testify/require"
)

func demoManifest(key string) model.Manifest {
	return model.Manifest{
		Key:     key,
		Name:    "Demo Plugin",
		Author:  "alice",
		Version: "1.0.0",
		Depends: model.Depends{
			Engine:     ">=7.1",
			Packages:   map[string]string{"phpmailer/phpmailer": "^6.0"},
			Extensions: []string{"curl", "pdo"},
		},
	}
}

// writeTree writes files (slash separated path -> content) below dir.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func manifestJSON(t *testing.T, m model.Manifest) string {
	t.Helper()
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return string(data)
}

// buildArchive packs files into plugins/<key>.zip below root.
func buildArchive(t *testing.T, root, key string, files map[string]string) {
	t.Helper()
	src := t.TempDir()
	writeTree(t, src, files)
	archivePath := plugin.NewLayout(root).ArchivePath(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(archivePath), 0o755))
	require.NoError(t, archive.NewManager().Create(context.Background(), src, archivePath))
}
